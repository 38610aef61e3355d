package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"stoik.com/phishscan/internal/core/domain"
)

const geminiSystemPrompt = "You are an email security classifier. Given the body of an email, " +
	"estimate the probability that it is a phishing attempt. Respond only with JSON of the form " +
	`{"phishing_probability": <number between 0 and 1>, "label": "PHISHING" or "LEGITIMATE"}.`

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiModelClient asks a Gemini model for a phishing probability and reports it on the 0-10 scale.
type GeminiModelClient struct {
	models contentGenerator
	model  string
}

func NewGeminiModelClient(ctx context.Context, apiKey, model string) (*GeminiModelClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiModelClient{models: client.Models, model: model}, nil
}

type geminiVerdict struct {
	PhishingProbability *float64 `json:"phishing_probability"`
	Label               string   `json:"label"`
}

func (c *GeminiModelClient) AnalyzeText(ctx context.Context, body string) (domain.MLResult, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(geminiSystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(body), config)
	if err != nil {
		return domain.MLResult{}, fmt.Errorf("gemini request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```json"), "```")

	var verdict geminiVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &verdict); err != nil {
		return domain.MLResult{}, fmt.Errorf("failed to decode gemini verdict: %w", err)
	}
	if verdict.PhishingProbability == nil {
		return domain.MLResult{}, fmt.Errorf("gemini verdict has no phishing_probability")
	}

	p := math.Max(0, math.Min(*verdict.PhishingProbability, 1))
	result := domain.MLResult{
		ModelScore:    math.Round(p*100) / 10,
		Label:         strings.ToUpper(verdict.Label),
		RawConfidence: p,
	}

	log.WithFields(log.Fields{
		"model":      c.model,
		"modelScore": result.ModelScore,
	}).Debug("Gemini analysis received")

	return result, nil
}
