package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
)

// binding routes one routing key of an exchange into a queue.
type binding struct {
	queue      string
	exchange   string
	routingKey string
}

var analysisBindings = []binding{
	{queue: domain.PhishingAnalysisQueue, exchange: domain.EmailExchange, routingKey: domain.RoutingKeyAnalysisRequested},
}

// TopologyManager handles the declaration of exchanges, queues, and bindings
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup declares the email exchange and the phishing analysis queue
func (t *TopologyManager) Setup() error {
	ch := t.client.Channel()

	if err := t.declareExchange(ch, domain.EmailExchange); err != nil {
		return err
	}

	for _, b := range analysisBindings {
		if err := t.declareQueue(ch, b.queue); err != nil {
			return err
		}
		if err := t.bindQueue(ch, b); err != nil {
			return err
		}
	}

	log.Info("AMQP topology setup completed successfully")
	return nil
}

func (t *TopologyManager) declareExchange(ch *amqp.Channel, name string) error {
	err := ch.ExchangeDeclare(
		name,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithField("exchange", name).Debug("Exchange declared")
	return nil
}

func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

func (t *TopologyManager) bindQueue(ch *amqp.Channel, b binding) error {
	if err := ch.QueueBind(b.queue, b.routingKey, b.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			b.queue, b.exchange, b.routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      b.queue,
		"exchange":   b.exchange,
		"routingKey": b.routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
