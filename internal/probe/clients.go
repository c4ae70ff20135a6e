package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

var errNotConfigured = errors.New("client not configured")

// PingProbe checks a network dependency through its client's handshake.
type PingProbe struct {
	dep    domain.Dependency
	pinger Pinger
}

func NewBrokerProbe(pinger Pinger) *PingProbe {
	return &PingProbe{
		dep: domain.Dependency{
			Name:        "amqp091-go",
			Kind:        domain.KindBroker,
			Description: "message-broker client",
		},
		pinger: pinger,
	}
}

func NewStoreProbe(pinger Pinger) *PingProbe {
	return &PingProbe{
		dep: domain.Dependency{
			Name:        "go-redis",
			Kind:        domain.KindStore,
			Description: "in-memory data-store client",
		},
		pinger: pinger,
	}
}

func NewDatabaseProbe(pinger Pinger) *PingProbe {
	return &PingProbe{
		dep: domain.Dependency{
			Name:        "pgx",
			Kind:        domain.KindDatabase,
			Description: "postgres driver",
			Optional:    true,
		},
		pinger: pinger,
	}
}

func (p *PingProbe) Dependency() domain.Dependency {
	return p.dep
}

func (p *PingProbe) Probe(ctx context.Context) error {
	if p.pinger == nil {
		return errNotConfigured
	}
	if err := p.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", p.dep.Kind, err)
	}
	return nil
}
