package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/port"
)

const (
	SanityCheckName     = "sanity"
	DefaultProbeTimeout = 5 * time.Second
)

type PreflightService struct {
	workerID     uuid.UUID
	probers      []port.Prober
	store        port.ReportStore
	probeTimeout time.Duration
	now          func() time.Time
}

type PreflightOption func(*PreflightService)

// WithReportStore persists every report produced by Run.
func WithReportStore(store port.ReportStore) PreflightOption {
	return func(s *PreflightService) {
		s.store = store
	}
}

func WithProbeTimeout(timeout time.Duration) PreflightOption {
	return func(s *PreflightService) {
		if timeout > 0 {
			s.probeTimeout = timeout
		}
	}
}

func WithClock(now func() time.Time) PreflightOption {
	return func(s *PreflightService) {
		s.now = now
	}
}

// NewPreflightService checks probers in the order given.
func NewPreflightService(workerID uuid.UUID, probers []port.Prober, opts ...PreflightOption) *PreflightService {
	s := &PreflightService{
		workerID:     workerID,
		probers:      probers,
		probeTimeout: DefaultProbeTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PreflightService) WorkerID() uuid.UUID {
	return s.workerID
}

func (s *PreflightService) Sanity() domain.CheckResult {
	start := s.now()
	result := domain.CheckResult{Name: SanityCheckName, Status: domain.StatusPassed}

	if 1+1 != 2 {
		result.Status = domain.StatusFailed
		result.Error = domain.ErrSanityCheckFailed.Error()
	}

	result.Duration = s.now().Sub(start)
	return result
}

// CheckDependencies probes every dependency in order. The first required failure
// stops the run: later required dependencies are reported as skipped and the
// returned error is a *domain.DependencyError naming the failed one.
func (s *PreflightService) CheckDependencies(ctx context.Context) ([]domain.CheckResult, error) {
	results := make([]domain.CheckResult, 0, len(s.probers))
	var firstErr error

	for _, prober := range s.probers {
		dep := prober.Dependency()
		result := domain.CheckResult{
			Name:     dep.Name,
			Kind:     string(dep.Kind),
			Optional: dep.Optional,
		}

		if firstErr != nil && !dep.Optional {
			result.Status = domain.StatusSkipped
			results = append(results, result)
			continue
		}

		start := s.now()
		err := s.probe(ctx, prober)
		result.Duration = s.now().Sub(start)

		logger := log.WithFields(log.Fields{
			"dependency": dep.Name,
			"kind":       dep.Kind,
			"duration":   result.Duration.String(),
		})

		if err == nil {
			result.Status = domain.StatusPassed
			logger.Debug("Dependency available")
			results = append(results, result)
			continue
		}

		result.Status = domain.StatusFailed
		result.Error = err.Error()
		results = append(results, result)

		if dep.Optional {
			logger.WithError(err).Warn("Optional dependency unavailable")
			continue
		}

		logger.WithError(err).Error("Required dependency unavailable")
		firstErr = &domain.DependencyError{Dependency: dep, Err: err}
	}

	return results, firstErr
}

// probe runs a single prober under its own timeout and turns a panic into an error.
func (s *PreflightService) probe(ctx context.Context, prober port.Prober) (err error) {
	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panicked: %v", r)
		}
	}()

	return prober.Probe(probeCtx)
}

// Run executes the sanity and dependency checks and returns the assembled report.
// The checks are independent; a sanity failure is reported first.
func (s *PreflightService) Run(ctx context.Context) (*domain.Report, error) {
	report := &domain.Report{
		WorkerID:  s.workerID,
		StartedAt: s.now().UTC(),
	}

	report.Sanity = s.Sanity()
	deps, depErr := s.CheckDependencies(ctx)
	report.Dependencies = deps
	report.FinishedAt = s.now().UTC()

	if s.store != nil {
		if err := s.store.SaveReport(ctx, report); err != nil {
			log.WithError(err).WithField("workerID", s.workerID).Warn("Failed to persist preflight report")
		}
	}

	log.WithFields(log.Fields{
		"workerID":     s.workerID,
		"passed":       report.Passed(),
		"dependencies": len(report.Dependencies),
	}).Info("Preflight checks completed")

	if !report.Sanity.Passed() {
		return report, domain.ErrSanityCheckFailed
	}
	return report, depErr
}

var _ port.PreflightService = (*PreflightService)(nil)
