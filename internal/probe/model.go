package probe

import (
	"context"
	"fmt"
	"io"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

// ModelProbe fits a logistic classifier on a linearly separable set and checks
// that it predicts both classes.
type ModelProbe struct{}

func NewModelProbe() *ModelProbe {
	return &ModelProbe{}
}

func (p *ModelProbe) Dependency() domain.Dependency {
	return domain.Dependency{
		Name:        "goml",
		Kind:        domain.KindML,
		Description: "machine-learning library",
	}
}

func (p *ModelProbe) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	x := [][]float64{{-4}, {-3}, {-2}, {-1}, {1}, {2}, {3}, {4}}
	y := []float64{0, 0, 0, 0, 1, 1, 1, 1}

	model := linear.NewLogistic(base.BatchGA, 0.01, 0, 500, x, y)
	model.Output = io.Discard
	if err := model.Learn(); err != nil {
		return fmt.Errorf("train logistic model: %w", err)
	}

	low, err := model.Predict([]float64{-3})
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	high, err := model.Predict([]float64{3})
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	if low[0] >= 0.5 || high[0] <= 0.5 {
		return fmt.Errorf("unexpected predictions: p(-3)=%.3f p(3)=%.3f", low[0], high[0])
	}
	return nil
}
