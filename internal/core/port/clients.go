package port

import (
	"context"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

type NotifierClient interface {
	NotifyWorkerReady(ctx context.Context, message *domain.WorkerReadyMessage) error
	NotifyPreflightFailed(ctx context.Context, message *domain.PreflightFailedMessage) error
}

// Prober checks that a single third-party dependency is usable.
type Prober interface {
	Dependency() domain.Dependency
	Probe(ctx context.Context) error
}
