package mocks

import (
	"context"

	"github.com/flashdeck/flashdeck-api/internal/store"
)

// MockTransactor implements store.Transactor for testing. By default it
// runs the function directly with a nil transaction, which pairs with
// the mock stores' WithTx returning themselves.
type MockTransactor struct {
	// WithinTxFn overrides the default pass-through behavior.
	WithinTxFn func(ctx context.Context, fn store.TxFn) error

	// Err, when set, is returned without running the function.
	Err error

	// Calls counts WithinTx invocations.
	Calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

// WithinTx implements store.Transactor.WithinTx
func (m *MockTransactor) WithinTx(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}
