package port

import (
	"context"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

type PreflightService interface {
	Sanity() domain.CheckResult
	CheckDependencies(ctx context.Context) ([]domain.CheckResult, error)
	Run(ctx context.Context) (*domain.Report, error)
}
