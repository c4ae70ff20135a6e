package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrSanityCheckFailed = errors.New("sanity check failed: 1 + 1 != 2")

type DependencyKind string

const (
	KindBroker   DependencyKind = "broker"
	KindStore    DependencyKind = "store"
	KindML       DependencyKind = "ml"
	KindNumeric  DependencyKind = "numeric"
	KindTabular  DependencyKind = "tabular"
	KindDatabase DependencyKind = "database"
)

type Dependency struct {
	Name        string         `json:"name"`
	Kind        DependencyKind `json:"kind"`
	Description string         `json:"description"`
	Optional    bool           `json:"optional,omitempty"`
}

type CheckStatus string

const (
	StatusPassed  CheckStatus = "passed"
	StatusFailed  CheckStatus = "failed"
	StatusSkipped CheckStatus = "skipped"
)

type CheckResult struct {
	Name     string        `json:"name"`
	Kind     string        `json:"kind,omitempty"`
	Optional bool          `json:"optional,omitempty"`
	Status   CheckStatus   `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

func (r CheckResult) Passed() bool {
	return r.Status == StatusPassed
}

type Report struct {
	WorkerID     uuid.UUID     `json:"worker_id"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	Sanity       CheckResult   `json:"sanity"`
	Dependencies []CheckResult `json:"dependencies"`
}

// Passed reports whether the sanity check passed and no required dependency failed.
func (r *Report) Passed() bool {
	if !r.Sanity.Passed() {
		return false
	}
	for _, dep := range r.Dependencies {
		if !dep.Optional && dep.Status != StatusPassed {
			return false
		}
	}
	return true
}

// Checks flattens the report into name -> status, sanity included.
func (r *Report) Checks() map[string]string {
	checks := make(map[string]string, len(r.Dependencies)+1)
	checks[r.Sanity.Name] = string(r.Sanity.Status)
	for _, dep := range r.Dependencies {
		checks[dep.Name] = string(dep.Status)
	}
	return checks
}

// DependencyError is returned when a required dependency cannot be loaded.
type DependencyError struct {
	Dependency Dependency
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("failed to load required dependency %s (%s): %v", e.Dependency.Name, e.Dependency.Description, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
