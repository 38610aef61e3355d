package domain

import (
	"time"

	"github.com/google/uuid"
)

var (
	RoutingKeyAnalysisRequested = "email.analysis.requested"
	RoutingKeyAnalysisCompleted = "email.analysis.completed"
	RoutingKeyPhishingDetected  = "email.phishing.detected"
)

const (
	EmailExchange         = "email"
	PhishingAnalysisQueue = "email.phishing.analysis"
)

type AnalysisRequestedMessage struct {
	RequestID   uuid.UUID   `json:"request_id" validate:"required"`
	Payload     TextPayload `json:"payload"`
	RequestedAt time.Time   `json:"requested_at"`
}

type AnalysisCompletedMessage struct {
	RequestID   uuid.UUID      `json:"request_id"`
	Assessment  RiskAssessment `json:"assessment"`
	CompletedAt time.Time      `json:"completed_at"`
}

type PhishingDetectedMessage struct {
	RequestID  uuid.UUID `json:"request_id"`
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Score      int       `json:"score"`
	Triggers   []string  `json:"triggers"`
	DetectedAt time.Time `json:"detected_at"`
}
