package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jaytaylor/html2text"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
)

// AnalysisService runs extraction, evaluation, aggregation, ML blending and
// classification for a single request. It holds no per-request state.
type AnalysisService struct {
	evaluators map[domain.Category]port.Evaluator
	mlClient   port.MLClient
	validate   *validator.Validate
}

func NewAnalysisService(
	mlClient port.MLClient,
	validate *validator.Validate,
	evaluators ...port.Evaluator,
) *AnalysisService {
	registry := make(map[domain.Category]port.Evaluator, len(evaluators))
	for _, e := range evaluators {
		registry[e.Category()] = e
	}
	return &AnalysisService{
		evaluators: registry,
		mlClient:   mlClient,
		validate:   validate,
	}
}

// AnalyzeText assesses a subject/body/sender payload. Only URL evidence is available
// on this pathway, so every other category comes back empty.
func (s *AnalysisService) AnalyzeText(ctx context.Context, payload domain.TextPayload) (domain.RiskAssessment, error) {
	if err := s.validate.Struct(payload); err != nil {
		return domain.RiskAssessment{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	body := payload.BodyText()
	evidence := domain.Evidence{URLs: ExtractURLs(body)}

	return s.assess(ctx, body, evidence)
}

// AnalyzeEmail assesses a parsed email with all of its headers and parts.
func (s *AnalysisService) AnalyzeEmail(ctx context.Context, message *domain.Message) (domain.RiskAssessment, error) {
	if message == nil {
		return domain.RiskAssessment{}, fmt.Errorf("%w: no message", domain.ErrMalformedInput)
	}

	body := messageText(message)
	urls := ExtractURLs(body)
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		seen[u.FullURL] = struct{}{}
	}
	for _, u := range ExtractHTMLLinks(message.HTML) {
		if _, dup := seen[u.FullURL]; dup {
			continue
		}
		seen[u.FullURL] = struct{}{}
		urls = append(urls, u)
	}

	return s.assess(ctx, body, domain.Evidence{URLs: urls, Message: message})
}

func (s *AnalysisService) assess(ctx context.Context, body string, evidence domain.Evidence) (domain.RiskAssessment, error) {
	findings := Evaluate(s.evaluators, evidence)

	base, err := Aggregate(findings)
	if err != nil {
		return domain.RiskAssessment{}, err
	}

	ml, err := s.mlClient.AnalyzeText(ctx, body)
	if err != nil {
		return domain.RiskAssessment{}, fmt.Errorf("%w: %w", domain.ErrMLUnavailable, err)
	}

	assessment := Finalize(base, ml, findings[domain.CategoryURL])

	log.WithFields(log.Fields{
		"urls":     len(evidence.URLs),
		"score":    assessment.Score,
		"verdict":  assessment.Verdict,
		"triggers": len(assessment.Triggers),
	}).Debug("Assessment completed")

	return assessment, nil
}

// messageText prefers the plain-text body and falls back to a rendering of the HTML one.
func messageText(message *domain.Message) string {
	if strings.TrimSpace(message.Text) != "" || message.HTML == "" {
		return message.Text
	}
	text, err := html2text.FromString(message.HTML, html2text.Options{})
	if err != nil {
		log.WithError(err).Warn("Failed to convert HTML body to text")
		return ""
	}
	return text
}
