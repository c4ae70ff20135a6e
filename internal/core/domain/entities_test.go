package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportPassed(t *testing.T) {
	report := &Report{
		Sanity: CheckResult{Name: "sanity", Status: StatusPassed},
		Dependencies: []CheckResult{
			{Name: "amqp091-go", Status: StatusPassed},
			{Name: "postgres", Status: StatusFailed, Optional: true},
		},
	}
	assert.True(t, report.Passed())

	report.Dependencies = append(report.Dependencies, CheckResult{Name: "go-redis", Status: StatusSkipped})
	assert.False(t, report.Passed())
}

func TestReportPassed_SanityFailed(t *testing.T) {
	report := &Report{Sanity: CheckResult{Name: "sanity", Status: StatusFailed}}
	assert.False(t, report.Passed())
}

func TestReportChecks(t *testing.T) {
	report := &Report{
		Sanity:       CheckResult{Name: "sanity", Status: StatusPassed},
		Dependencies: []CheckResult{{Name: "gonum", Status: StatusFailed}},
	}
	assert.Equal(t, map[string]string{"sanity": "passed", "gonum": "failed"}, report.Checks())
}

func TestDependencyError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	err := &DependencyError{
		Dependency: Dependency{Name: "go-redis", Kind: KindStore, Description: "in-memory data-store client"},
		Err:        cause,
	}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "go-redis")
	assert.Contains(t, err.Error(), "connection refused")
}
