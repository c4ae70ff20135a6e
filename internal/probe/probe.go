// Package probe exercises each third-party dependency the worker needs through a
// small, deterministic operation. A probe error means the dependency is not
// usable in the current environment.
package probe

import (
	"context"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/port"
)

// Pinger is implemented by network clients that can verify their connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Func adapts a plain function to port.Prober.
type Func struct {
	Dep domain.Dependency
	Fn  func(ctx context.Context) error
}

func (f Func) Dependency() domain.Dependency {
	return f.Dep
}

func (f Func) Probe(ctx context.Context) error {
	return f.Fn(ctx)
}

type Clients struct {
	Broker   Pinger
	Store    Pinger
	Database Pinger
}

// Default returns the required probes in checked order: broker, store, ml,
// numeric, tabular. The database probe is appended as optional when configured.
func Default(clients Clients) []port.Prober {
	probers := []port.Prober{
		NewBrokerProbe(clients.Broker),
		NewStoreProbe(clients.Store),
		NewModelProbe(),
		NewNumericProbe(),
		NewTabularProbe(),
	}
	if clients.Database != nil {
		probers = append(probers, NewDatabaseProbe(clients.Database))
	}
	return probers
}

var (
	_ port.Prober = Func{}
	_ port.Prober = (*PingProbe)(nil)
	_ port.Prober = (*ModelProbe)(nil)
	_ port.Prober = (*NumericProbe)(nil)
	_ port.Prober = (*TabularProbe)(nil)
)
