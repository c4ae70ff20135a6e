package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

type ReportStore interface {
	SaveReport(ctx context.Context, report *domain.Report) error
	LatestReport(ctx context.Context, workerID uuid.UUID) (*domain.Report, error)
}
