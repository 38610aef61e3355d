package amqp

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Client manages the RabbitMQ connection and channel
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.RWMutex
	url     string
	closed  bool
}

func NewClient(url string) (*Client, error) {
	client := &Client{
		url: url,
	}

	if err := client.connect(); err != nil {
		return nil, fmt.Errorf("failed to create AMQP client: %w", err)
	}

	return client, nil
}

func (c *Client) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch
	c.closed = false

	go c.watchConnection(conn.NotifyClose(make(chan *amqp.Error, 1)))

	log.Info("AMQP client connected successfully")
	return nil
}

// watchConnection marks the client closed once the broker drops the connection
func (c *Client) watchConnection(closeErr <-chan *amqp.Error) {
	err, ok := <-closeErr
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	if ok && err != nil {
		log.WithError(err).Error("AMQP connection closed")
	}
}

// Channel returns the current channel (use with caution, prefer Publisher/Consumer)
func (c *Client) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// Healthy reports whether the broker connection is still open
func (c *Client) Healthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed && c.conn != nil && !c.conn.IsClosed()
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	c.closed = true

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	log.Info("AMQP client closed successfully")
	return nil
}
