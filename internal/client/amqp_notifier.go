package client

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
	PublishWithConfirm(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
	validate  *validator.Validate
}

func NewAMQPNotifier(publisher Publisher, validate *validator.Validate) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
		validate:  validate,
	}
}

func (n *AMQPNotifier) NotifyWorkerReady(ctx context.Context, message *domain.WorkerReadyMessage) error {
	if err := n.validate.Struct(message); err != nil {
		return fmt.Errorf("invalid worker ready message: %w", err)
	}
	return n.publisher.Publish(ctx, domain.FraudExchange, domain.RoutingKeyWorkerReady, message)
}

// NotifyPreflightFailed waits for broker confirmation.
func (n *AMQPNotifier) NotifyPreflightFailed(ctx context.Context, message *domain.PreflightFailedMessage) error {
	if err := n.validate.Struct(message); err != nil {
		return fmt.Errorf("invalid preflight failed message: %w", err)
	}
	return n.publisher.PublishWithConfirm(ctx, domain.FraudExchange, domain.RoutingKeyPreflightFailed, message)
}
