package client

import (
	"context"

	"stoik.com/phishscan/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyAnalysisRequested(ctx context.Context, message *domain.AnalysisRequestedMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyAnalysisRequested, message)
}

func (n *AMQPNotifier) NotifyAnalysisCompleted(ctx context.Context, message *domain.AnalysisCompletedMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyAnalysisCompleted, message)
}

func (n *AMQPNotifier) NotifyPhishingDetected(ctx context.Context, message *domain.PhishingDetectedMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyPhishingDetected, message)
}
