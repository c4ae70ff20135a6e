package probe

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

type NumericProbe struct{}

func NewNumericProbe() *NumericProbe {
	return &NumericProbe{}
}

func (p *NumericProbe) Dependency() domain.Dependency {
	return domain.Dependency{
		Name:        "gonum",
		Kind:        domain.KindNumeric,
		Description: "numerical-array library",
	}
}

func (p *NumericProbe) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})
	want := mat.NewDense(2, 2, []float64{19, 22, 43, 50})

	var got mat.Dense
	got.Mul(a, b)
	if !mat.Equal(&got, want) {
		return fmt.Errorf("unexpected matrix product: %v", mat.Formatted(&got, mat.Squeeze()))
	}

	if mean := stat.Mean([]float64{1, 2, 3, 4}, nil); mean != 2.5 {
		return fmt.Errorf("unexpected mean %v", mean)
	}
	return nil
}
