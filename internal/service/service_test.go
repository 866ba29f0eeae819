package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/events"
	"github.com/carson-networks/fuel-server/internal/fuel"
	"github.com/carson-networks/fuel-server/internal/operator/actions"
	"github.com/carson-networks/fuel-server/internal/storage"
	"github.com/carson-networks/fuel-server/internal/storage/sqlconfig"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// inlineProcessor performs actions directly against a writer built on the mocks.
type inlineProcessor struct {
	writer *storage.Writer
	calls  int
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls++
	return action.Perform(ctx, p.writer)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.OperationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.OperationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type testDeps struct {
	ops       *sqlconfig.MockIOperationTable
	users     *sqlconfig.MockIUserTable
	processor *inlineProcessor
	publisher *recordingPublisher
	tokens    *auth.Tokens
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func testRateTable(t *testing.T) *fuel.RateTable {
	t.Helper()
	table, err := fuel.NewRateTable([]fuel.Rate{
		{RateKey: fuel.RateKey{Month: 1, Year: 2024, FuelType: fuel.FuelTypeGasoline, OperationType: fuel.OperationTypePurchase}, UnitPrice: d("5.92"), TaxRate: d("17.20")},
		{RateKey: fuel.RateKey{Month: 1, Year: 2024, FuelType: fuel.FuelTypeGasoline, OperationType: fuel.OperationTypeSale}, UnitPrice: d("5.94"), TaxRate: d("17.00")},
		{RateKey: fuel.RateKey{Month: 2, Year: 2024, FuelType: fuel.FuelTypeEthanol, OperationType: fuel.OperationTypePurchase}, UnitPrice: d("3.53"), TaxRate: d("19.30")},
	})
	require.NoError(t, err)
	return table
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	ops := sqlconfig.NewMockIOperationTable(t)
	users := sqlconfig.NewMockIUserTable(t)
	return testDeps{
		ops:       ops,
		users:     users,
		processor: &inlineProcessor{writer: storage.NewWriterWithTables(nil, ops, users)},
		publisher: &recordingPublisher{},
		tokens:    auth.NewTokens("test-secret", time.Hour),
	}
}

func (deps testDeps) store() *storage.Storage {
	return &storage.Storage{Operations: deps.ops, Users: deps.users}
}

func newTestOperationService(t *testing.T) (*OperationService, testDeps) {
	t.Helper()
	deps := newTestDeps(t)
	svc := NewOperationService(deps.store(), testRateTable(t), deps.processor, deps.publisher, quietLogger())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc, deps
}

func newTestUserService(t *testing.T) (*UserService, testDeps) {
	t.Helper()
	deps := newTestDeps(t)
	return NewUserService(deps.store(), deps.processor, deps.tokens), deps
}

var errStorage = errors.New("connection refused")
