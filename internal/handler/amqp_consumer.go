package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
)

const analysisJobTimeout = 30 * time.Second

var errNotifyFailed = errors.New("failed to publish analysis outcome")

type analysisJob struct {
	message  domain.AnalysisRequestedMessage
	delivery *amqp.Delivery
}

type AMQPConsumer struct {
	analysisService port.AnalysisService
	notifier        port.NotifierClient
	validate        *validator.Validate
	jobQueue        chan analysisJob
	wg              sync.WaitGroup
	numWorkers      int
}

func NewAMQPConsumer(
	analysisService port.AnalysisService,
	notifier port.NotifierClient,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		analysisService: analysisService,
		notifier:        notifier,
		validate:        validate,
		jobQueue:        make(chan analysisJob, queueSize),
		numWorkers:      numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := range c.numWorkers {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d phishing analysis workers", c.numWorkers)
}

// Stop closes the job queue and waits for the workers to drain it, or for ctx to expire.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All phishing analysis workers stopped after drain")
	case <-ctx.Done():
		log.Warn("Phishing analysis workers did not drain before shutdown deadline")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[AnalysisWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[AnalysisWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, analysisJobTimeout)
			err := c.process(jobCtx, job.message)
			cancel()
			c.settle(job, err)
		}
	}
}

// process analyses one request and publishes its outcome.
func (c *AMQPConsumer) process(ctx context.Context, msg domain.AnalysisRequestedMessage) error {
	assessment, err := c.analysisService.AnalyzeText(ctx, msg.Payload)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"requestID": msg.RequestID,
		"score":     assessment.Score,
		"verdict":   assessment.Verdict,
	})
	logger.Info("Analysis completed")

	completed := &domain.AnalysisCompletedMessage{
		RequestID:   msg.RequestID,
		Assessment:  assessment,
		CompletedAt: time.Now().UTC(),
	}
	if err := c.notifier.NotifyAnalysisCompleted(ctx, completed); err != nil {
		return fmt.Errorf("%w: %w", errNotifyFailed, err)
	}

	if assessment.Verdict != domain.VerdictPhishing {
		return nil
	}

	logger.Warn("Phishing detected")
	err = c.notifier.NotifyPhishingDetected(ctx, &domain.PhishingDetectedMessage{
		RequestID:  msg.RequestID,
		Sender:     msg.Payload.SenderText(),
		Subject:    msg.Payload.SubjectText(),
		Score:      assessment.Score,
		Triggers:   assessment.Triggers,
		DetectedAt: completed.CompletedAt,
	})
	if err != nil {
		// consumers of the completed event see a second one on redelivery
		return fmt.Errorf("%w: %w", errNotifyFailed, err)
	}
	return nil
}

// settle acks successful jobs. Malformed requests are dropped; transient failures are
// requeued so the request is retried.
func (c *AMQPConsumer) settle(job analysisJob, err error) {
	if job.delivery == nil {
		return
	}
	if err == nil {
		job.delivery.Ack(false)
		return
	}
	requeue := retryable(err)
	log.WithError(err).WithFields(log.Fields{
		"requestID": job.message.RequestID,
		"requeue":   requeue,
	}).Error("Analysis failed")
	job.delivery.Nack(false, requeue)
}

// retryable reports whether a failure is transient: the classifier or the broker
// was unavailable, or the consumer shut down before the job ran.
func retryable(err error) bool {
	return errors.Is(err, domain.ErrMLUnavailable) ||
		errors.Is(err, errNotifyFailed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyAnalysisRequested:
		err = c.handleAnalysisRequestedMessage(ctx, delivery)
	default:
		err = errors.New("unsupported routing key")
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, retryable(err))
	}
}

func (c *AMQPConsumer) handleAnalysisRequestedMessage(ctx context.Context, delivery *amqp.Delivery) error {
	var msg domain.AnalysisRequestedMessage

	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		log.Errorf("failed to unmarshal analysis request: %v", err)
		return err
	}

	if err := c.validate.Struct(msg); err != nil {
		log.Errorf("analysis request validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"requestID":   msg.RequestID,
		"requestedAt": msg.RequestedAt,
	}).Info("Received analysis request")

	// Blocks when the queue is full, which holds back further deliveries
	select {
	case c.jobQueue <- analysisJob{message: msg, delivery: delivery}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
