package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/port"
	"github.com/taylor-curran/oshift-demo-all-apps/mocks"
)

var (
	brokerDep  = domain.Dependency{Name: "amqp091-go", Kind: domain.KindBroker, Description: "message-broker client"}
	storeDep   = domain.Dependency{Name: "go-redis", Kind: domain.KindStore, Description: "in-memory data-store client"}
	mlDep      = domain.Dependency{Name: "goml", Kind: domain.KindML, Description: "machine-learning library"}
	numericDep = domain.Dependency{Name: "gonum", Kind: domain.KindNumeric, Description: "numerical-array library"}
	tabularDep = domain.Dependency{Name: "gota", Kind: domain.KindTabular, Description: "tabular-data library"}
	dbDep      = domain.Dependency{Name: "pgx", Kind: domain.KindDatabase, Description: "postgres driver", Optional: true}
)

type PreflightServiceSuite struct {
	suite.Suite
	workerID    uuid.UUID
	reportStore *mocks.ReportStore
	probers     map[string]*mocks.Prober
}

func TestPreflightService(t *testing.T) {
	suite.Run(t, new(PreflightServiceSuite))
}

func (suite *PreflightServiceSuite) SetupTest() {
	suite.workerID = uuid.New()
	suite.reportStore = &mocks.ReportStore{}
	suite.probers = make(map[string]*mocks.Prober)
}

func (suite *PreflightServiceSuite) TearDownTest() {
	suite.reportStore.AssertExpectations(suite.T())
	for _, p := range suite.probers {
		p.AssertExpectations(suite.T())
	}
}

// prober registers a mock whose probe returns err. Probe expectations are optional
// because skipped dependencies are never probed.
func (suite *PreflightServiceSuite) prober(dep domain.Dependency, err error) *mocks.Prober {
	p := &mocks.Prober{}
	p.EXPECT().Dependency().Return(dep)
	p.EXPECT().Probe(mock.Anything).Return(err).Maybe()
	suite.probers[dep.Name] = p
	return p
}

func (suite *PreflightServiceSuite) service(probers ...port.Prober) *PreflightService {
	return NewPreflightService(suite.workerID, probers)
}

func (suite *PreflightServiceSuite) TestSanity() {
	result := suite.service().Sanity()

	assert.Equal(suite.T(), SanityCheckName, result.Name)
	assert.Equal(suite.T(), domain.StatusPassed, result.Status)
	assert.Empty(suite.T(), result.Error)
}

func (suite *PreflightServiceSuite) TestCheckDependencies_AllAvailable() {
	svc := suite.service(
		suite.prober(brokerDep, nil),
		suite.prober(storeDep, nil),
		suite.prober(mlDep, nil),
		suite.prober(numericDep, nil),
		suite.prober(tabularDep, nil),
	)

	results, err := svc.CheckDependencies(context.Background())

	suite.NoError(err)
	suite.Len(results, 5)
	for _, r := range results {
		suite.Equal(domain.StatusPassed, r.Status, r.Name)
	}
	suite.Equal([]string{"amqp091-go", "go-redis", "goml", "gonum", "gota"}, names(results))
}

func (suite *PreflightServiceSuite) TestCheckDependencies_StoreMissing() {
	cause := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	svc := suite.service(
		suite.prober(brokerDep, nil),
		suite.prober(storeDep, cause),
		suite.prober(mlDep, nil),
		suite.prober(numericDep, nil),
		suite.prober(tabularDep, nil),
	)

	results, err := svc.CheckDependencies(context.Background())

	var depErr *domain.DependencyError
	suite.Require().ErrorAs(err, &depErr)
	suite.Equal("go-redis", depErr.Dependency.Name)
	suite.ErrorIs(err, cause)
	suite.Contains(err.Error(), "connection refused")

	suite.Equal(domain.StatusPassed, results[0].Status)
	suite.Equal(domain.StatusFailed, results[1].Status)
	suite.Equal(cause.Error(), results[1].Error)
	for _, r := range results[2:] {
		suite.Equal(domain.StatusSkipped, r.Status, r.Name)
	}
	suite.probers["goml"].AssertNotCalled(suite.T(), "Probe", mock.Anything)
}

func (suite *PreflightServiceSuite) TestCheckDependencies_AllMissingReportsFirst() {
	svc := suite.service(
		suite.prober(brokerDep, errors.New("broker down")),
		suite.prober(storeDep, errors.New("store down")),
		suite.prober(mlDep, errors.New("ml broken")),
		suite.prober(numericDep, errors.New("numeric broken")),
		suite.prober(tabularDep, errors.New("tabular broken")),
	)

	_, err := svc.CheckDependencies(context.Background())

	var depErr *domain.DependencyError
	suite.Require().ErrorAs(err, &depErr)
	suite.Equal("amqp091-go", depErr.Dependency.Name)
	suite.Contains(err.Error(), "broker down")
	suite.NotContains(err.Error(), "store down")
}

func (suite *PreflightServiceSuite) TestCheckDependencies_OptionalFailureDoesNotFail() {
	svc := suite.service(
		suite.prober(brokerDep, nil),
		suite.prober(dbDep, errors.New("no postgres")),
		suite.prober(storeDep, nil),
	)

	results, err := svc.CheckDependencies(context.Background())

	suite.NoError(err)
	suite.Equal(domain.StatusFailed, results[1].Status)
	suite.True(results[1].Optional)
	suite.Equal(domain.StatusPassed, results[2].Status)
}

func (suite *PreflightServiceSuite) TestCheckDependencies_RecoversPanic() {
	svc := suite.service(panicProber{dep: mlDep})

	results, err := svc.CheckDependencies(context.Background())

	suite.Require().Error(err)
	suite.Contains(err.Error(), "probe panicked: blas: index out of range")
	suite.Equal(domain.StatusFailed, results[0].Status)
}

func (suite *PreflightServiceSuite) TestRun_PersistsReport() {
	svc := NewPreflightService(suite.workerID,
		[]port.Prober{suite.prober(brokerDep, nil), suite.prober(storeDep, nil)},
		WithReportStore(suite.reportStore),
	)
	suite.reportStore.EXPECT().SaveReport(mock.Anything, mock.AnythingOfType("*domain.Report")).Return(nil)

	report, err := svc.Run(context.Background())

	suite.NoError(err)
	suite.True(report.Passed())
	suite.Equal(suite.workerID, report.WorkerID)
	suite.Equal(domain.StatusPassed, report.Sanity.Status)
	suite.False(report.FinishedAt.Before(report.StartedAt))
}

func (suite *PreflightServiceSuite) TestRun_StoreErrorIsNotFatal() {
	svc := NewPreflightService(suite.workerID,
		[]port.Prober{suite.prober(brokerDep, nil)},
		WithReportStore(suite.reportStore),
	)
	suite.reportStore.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(errors.New("redis unavailable"))

	report, err := svc.Run(context.Background())

	suite.NoError(err)
	suite.True(report.Passed())
}

func (suite *PreflightServiceSuite) TestRun_DependencyFailureKeepsSanity() {
	svc := suite.service(suite.prober(storeDep, errors.New("connection refused")))

	report, err := svc.Run(context.Background())

	suite.Error(err)
	suite.False(report.Passed())
	suite.Equal(domain.StatusPassed, report.Sanity.Status)
}

func (suite *PreflightServiceSuite) TestRun_Idempotent() {
	svc := suite.service(
		suite.prober(brokerDep, nil),
		suite.prober(storeDep, errors.New("connection refused")),
		suite.prober(mlDep, nil),
	)

	first, firstErr := svc.Run(context.Background())
	second, secondErr := svc.Run(context.Background())

	suite.Equal(firstErr.Error(), secondErr.Error())
	suite.Equal(first.Checks(), second.Checks())
}

func (suite *PreflightServiceSuite) TestRun_UsesClock() {
	fixed := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	svc := NewPreflightService(suite.workerID,
		[]port.Prober{suite.prober(numericDep, nil)},
		WithClock(func() time.Time { return fixed }),
		WithProbeTimeout(time.Second),
	)

	report, err := svc.Run(context.Background())

	suite.NoError(err)
	suite.Equal(fixed, report.StartedAt)
	suite.Equal(fixed, report.FinishedAt)
	suite.Zero(report.Dependencies[0].Duration)
}

func (suite *PreflightServiceSuite) TestCheckDependencies_PerDependencyTimeout() {
	slow := blockingProber{dep: domain.Dependency{Name: "slow", Kind: domain.KindStore}}
	svc := NewPreflightService(suite.workerID,
		[]port.Prober{slow, suite.prober(mlDep, nil)},
		WithProbeTimeout(50*time.Millisecond),
	)

	start := time.Now()
	results, err := svc.CheckDependencies(context.Background())

	suite.Less(time.Since(start), 2*time.Second)
	var depErr *domain.DependencyError
	suite.Require().ErrorAs(err, &depErr)
	suite.Equal("slow", depErr.Dependency.Name)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.Equal(domain.StatusFailed, results[0].Status)
	suite.Equal(domain.StatusSkipped, results[1].Status)
}

func TestBasicSetup(t *testing.T) {
	assert.Equal(t, 2, 1+1)
}

type panicProber struct {
	dep domain.Dependency
}

func (p panicProber) Dependency() domain.Dependency { return p.dep }

func (p panicProber) Probe(context.Context) error {
	panic("blas: index out of range")
}

type blockingProber struct {
	dep domain.Dependency
}

func (p blockingProber) Dependency() domain.Dependency { return p.dep }

func (p blockingProber) Probe(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func names(results []domain.CheckResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}
