package amqp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	connectionName     = "fraud-detection-worker"
	defaultDialTimeout = 5 * time.Second
)

// Client manages the RabbitMQ connection and channel
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.RWMutex
	url     string
}

// NewClient creates a new AMQP client
func NewClient(ctx context.Context, url string) (*Client, error) {
	client := &Client{
		url: url,
	}

	if err := client.connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to create AMQP client: %w", err)
	}

	return client, nil
}

func dial(ctx context.Context, url string) (*amqp.Connection, error) {
	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	properties := amqp.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp.DialConfig(url, amqp.Config{
		Dial:       amqp.DefaultDial(timeout),
		Heartbeat:  10 * time.Second,
		Properties: properties,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

// connect establishes connection and channel
func (c *Client) connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := dial(ctx, c.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch

	go c.handleConnectionClose(conn)

	log.Info("AMQP client connected successfully")
	return nil
}

// handleConnectionClose listens for connection close events
func (c *Client) handleConnectionClose(conn *amqp.Connection) {
	closeErr := conn.NotifyClose(make(chan *amqp.Error, 1))

	err := <-closeErr
	if err != nil {
		log.Errorf("AMQP connection closed: %v", err)
	}
}

// Channel returns the current channel (use with caution, prefer Publisher)
func (c *Client) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// Close closes the channel and connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %w", errors.Join(errs...))
	}

	log.Info("AMQP client closed successfully")
	return nil
}

// Dialer checks broker reachability with a short-lived connection, so the
// broker can be probed before a long-lived Client exists.
type Dialer struct {
	url string
}

func NewDialer(url string) *Dialer {
	return &Dialer{url: url}
}

// Ping dials the broker, opens a channel and closes both.
func (d *Dialer) Ping(ctx context.Context) error {
	if d.url == "" {
		return errors.New("AMQP URL is empty")
	}

	conn, err := dial(ctx, d.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	return ch.Close()
}
