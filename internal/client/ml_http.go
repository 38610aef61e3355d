package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
)

const maxModelScore = 10.0

// HTTPModelClient calls an external text-classification service that answers
// POST {"text": "..."} with {"model_score": 0-10, "label": "...", "raw_confidence": 0-1}.
type HTTPModelClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPModelClient(endpoint string, timeout time.Duration) *HTTPModelClient {
	return &HTTPModelClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

type analyzeTextResponse struct {
	ModelScore    *float64 `json:"model_score"`
	Label         string   `json:"label"`
	RawConfidence float64  `json:"raw_confidence"`
}

func (c *HTTPModelClient) AnalyzeText(ctx context.Context, body string) (domain.MLResult, error) {
	payload, err := json.Marshal(analyzeTextRequest{Text: body})
	if err != nil {
		return domain.MLResult{}, fmt.Errorf("failed to marshal ml request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.MLResult{}, fmt.Errorf("failed to build ml request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MLResult{}, fmt.Errorf("ml request to '%s' failed: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.MLResult{}, fmt.Errorf("ml service returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var decoded analyzeTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.MLResult{}, fmt.Errorf("failed to decode ml response: %w", err)
	}
	if decoded.ModelScore == nil {
		return domain.MLResult{}, fmt.Errorf("ml response has no model_score")
	}
	if score := *decoded.ModelScore; math.IsNaN(score) || score < 0 || score > maxModelScore {
		return domain.MLResult{}, fmt.Errorf("ml response model_score %v is outside [0, %v]", score, maxModelScore)
	}

	result := domain.MLResult{
		ModelScore:    *decoded.ModelScore,
		Label:         decoded.Label,
		RawConfidence: decoded.RawConfidence,
	}

	log.WithFields(log.Fields{
		"modelScore": result.ModelScore,
		"label":      result.Label,
	}).Debug("ML analysis received")

	return result, nil
}
