package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/port"
)

// WorkerService gates worker startup on the preflight checks and announces the outcome.
type WorkerService struct {
	preflight *PreflightService
	notifier  port.NotifierClient
	hostname  string
}

func NewWorkerService(preflight *PreflightService, notifier port.NotifierClient, hostname string) *WorkerService {
	return &WorkerService{
		preflight: preflight,
		notifier:  notifier,
		hostname:  hostname,
	}
}

func (w *WorkerService) Start(ctx context.Context) (*domain.Report, error) {
	report, err := w.preflight.Run(ctx)
	if err != nil {
		w.notifyFailed(ctx, report, err)
		return report, fmt.Errorf("worker is not allowed to run: %w", err)
	}

	message := &domain.WorkerReadyMessage{
		WorkerID:     report.WorkerID,
		Hostname:     w.hostname,
		Dependencies: readyDependencies(report),
		ReadyAt:      time.Now().UTC(),
	}
	if w.notifier != nil {
		if err := w.notifier.NotifyWorkerReady(ctx, message); err != nil {
			return report, fmt.Errorf("failed to announce worker readiness: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"workerID": report.WorkerID,
		"hostname": w.hostname,
	}).Info("Fraud detection worker is ready")
	return report, nil
}

// notifyFailed is best effort: the broker itself may be the missing dependency.
func (w *WorkerService) notifyFailed(ctx context.Context, report *domain.Report, cause error) {
	if w.notifier == nil || brokerFailed(report) {
		return
	}
	message := &domain.PreflightFailedMessage{
		Report:   report,
		Reason:   cause.Error(),
		FailedAt: time.Now().UTC(),
	}
	if err := w.notifier.NotifyPreflightFailed(ctx, message); err != nil {
		log.WithError(err).Warn("Failed to publish preflight failure")
	}
}

func brokerFailed(report *domain.Report) bool {
	for _, dep := range report.Dependencies {
		if dep.Kind == string(domain.KindBroker) && dep.Status != domain.StatusPassed {
			return true
		}
	}
	return false
}

func readyDependencies(report *domain.Report) []string {
	deps := make([]string, 0, len(report.Dependencies))
	for _, dep := range report.Dependencies {
		if dep.Passed() {
			deps = append(deps, dep.Name)
		}
	}
	return deps
}
