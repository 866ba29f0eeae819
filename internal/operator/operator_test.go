package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fuel-server/internal/storage"
)

type fakeTx struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rollbacks++
	return nil
}

type fakeWriterSource struct {
	tx  *fakeTx
	err error
}

func (f *fakeWriterSource) Write(context.Context) (*storage.Writer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return storage.NewWriterWithTables(f.tx, nil, nil), nil
}

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func startDelegator(t *testing.T, source WriterSource) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(source, 2)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx})

	performed := false
	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		performed = true
		return nil
	}))

	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	tx := &fakeTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx})
	actionErr := errors.New("boom")

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return actionErr
	}))

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcess_ReturnsCommitError(t *testing.T) {
	commitErr := errors.New("serialization failure")
	d := startDelegator(t, &fakeWriterSource{tx: &fakeTx{commitErr: commitErr}})

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return nil
	}))

	assert.ErrorIs(t, err, commitErr)
}

func TestProcess_ReturnsWriterError(t *testing.T) {
	openErr := errors.New("connection refused")
	d := startDelegator(t, &fakeWriterSource{err: openErr})

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		t.Fatal("action must not run without a writer")
		return nil
	}))

	assert.ErrorIs(t, err, openErr)
}

func TestProcess_CancelledContext(t *testing.T) {
	tx := &fakeTx{}
	d := startDelegator(t, &fakeWriterSource{tx: tx})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, funcAction(func(ctx context.Context, writer *storage.Writer) error {
		return nil
	}))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestStop_IsIdempotent(t *testing.T) {
	d := NewOperatorDelegator(&fakeWriterSource{tx: &fakeTx{}}, 0)
	d.Start()
	d.Stop()
	assert.NotPanics(t, d.Stop)
}
