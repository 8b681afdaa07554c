package store

import (
	"context"
	"database/sql"
)

// Transactor runs a function within a single atomic unit against the
// store. Services depend on this interface rather than *sql.DB so unit
// tests can substitute an implementation that skips the database.
type Transactor interface {
	// WithinTx executes fn inside a transaction. The transaction is
	// committed if fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn TxFn) error
}

// SQLTransactor is the database-backed Transactor used in production.
type SQLTransactor struct {
	db *sql.DB
}

// NewSQLTransactor creates a Transactor over the given database handle.
func NewSQLTransactor(db *sql.DB) *SQLTransactor {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &SQLTransactor{db: db}
}

// WithinTx implements Transactor using RunInTransaction.
func (t *SQLTransactor) WithinTx(ctx context.Context, fn TxFn) error {
	return RunInTransaction(ctx, t.db, fn)
}
