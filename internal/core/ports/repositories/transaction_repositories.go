package repositories

import (
	"context"

	"github.com/fintrack/fintrack/internal/core/domain"
)

// TransactionReader defines read operations for the transaction collection.
type TransactionReader interface {
	// GetAll retrieves the full ledger, preserving insertion order. The
	// returned slice is a point-in-time copy, never a live view. A ledger
	// that was never written yields an empty slice; a ledger that cannot be
	// decoded yields apperrors.ErrDecode so callers can tell the two apart.
	GetAll(ctx context.Context) ([]domain.Transaction, error)

	// GetByID retrieves the first transaction with an exact id match, or
	// apperrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction collection.
type TransactionWriter interface {
	// Upsert replaces the record with the same id, or appends when no such
	// record exists. Neither branch is an error.
	Upsert(ctx context.Context, txn domain.Transaction) error

	// Update replaces the record with the same id, failing with
	// apperrors.ErrNotFound when it does not exist. Deliberately asymmetric
	// with Upsert; the two contracts must not be collapsed.
	Update(ctx context.Context, txn domain.Transaction) error

	// Delete removes the record with the given id. Deleting an absent id is
	// a no-op, not an error.
	Delete(ctx context.Context, id string) error

	// Clear removes the entire collection. Used during restore so the
	// restored set is exact.
	Clear(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
