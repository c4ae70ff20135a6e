package probe

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

type TabularProbe struct{}

func NewTabularProbe() *TabularProbe {
	return &TabularProbe{}
}

func (p *TabularProbe) Dependency() domain.Dependency {
	return domain.Dependency{
		Name:        "gota",
		Kind:        domain.KindTabular,
		Description: "tabular-data library",
	}
}

func (p *TabularProbe) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	df := dataframe.LoadRecords([][]string{
		{"transaction_id", "amount"},
		{"tx-1", "12.50"},
		{"tx-2", "980.00"},
		{"tx-3", "7.50"},
	})
	if df.Err != nil {
		return fmt.Errorf("load records: %w", df.Err)
	}
	if df.Nrow() != 3 || df.Ncol() != 2 {
		return fmt.Errorf("unexpected frame shape %dx%d", df.Nrow(), df.Ncol())
	}

	var total float64
	for _, v := range df.Col("amount").Float() {
		total += v
	}
	if total != 1000 {
		return fmt.Errorf("unexpected column total %v", total)
	}
	return nil
}
