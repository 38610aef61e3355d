package port

import (
	"context"

	"stoik.com/phishscan/internal/core/domain"
)

type NotifierClient interface {
	NotifyAnalysisRequested(ctx context.Context, message *domain.AnalysisRequestedMessage) error
	NotifyAnalysisCompleted(ctx context.Context, message *domain.AnalysisCompletedMessage) error
	NotifyPhishingDetected(ctx context.Context, message *domain.PhishingDetectedMessage) error
}

// MLClient is the external text classifier. Implementations return an error rather than a default score.
type MLClient interface {
	AnalyzeText(ctx context.Context, body string) (domain.MLResult, error)
}
