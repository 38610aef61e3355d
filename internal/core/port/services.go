package port

import (
	"context"

	"stoik.com/phishscan/internal/core/domain"
)

type AnalysisService interface {
	AnalyzeText(ctx context.Context, payload domain.TextPayload) (domain.RiskAssessment, error)
	AnalyzeEmail(ctx context.Context, message *domain.Message) (domain.RiskAssessment, error)
}

// Evaluator produces the findings of a single category. It must return an empty,
// non-nil findings list when its part of the evidence is absent.
type Evaluator interface {
	Category() domain.Category
	Evaluate(evidence domain.Evidence) domain.CategoryResult
}

type MessageParser interface {
	Parse(raw []byte) (*domain.Message, error)
}
