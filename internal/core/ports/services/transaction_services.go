package services

import (
	"context"

	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/fintrack/fintrack/internal/dto"
)

// TransactionReaderSvc defines read operations over the ledger.
type TransactionReaderSvc interface {
	// ListTransactions returns the full ledger ordered as stored. A corrupt
	// ledger is logged and treated as empty so the outer surface never
	// crashes on bad persisted state.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetTransaction retrieves a single transaction by id.
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines write operations over the ledger.
type TransactionWriterSvc interface {
	// CreateTransaction validates the request, assigns a fresh id and
	// persists the new record.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction validates the request and replaces the existing
	// record wholesale. Fails with apperrors.ErrNotFound for an unknown id.
	UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// UpsertTransaction persists the record as-is, replacing or appending by
	// id. It never fails on either branch. Used by restore.
	UpsertTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a record by id; absent ids are a no-op.
	DeleteTransaction(ctx context.Context, id string) error

	// ClearTransactions empties the ledger.
	ClearTransactions(ctx context.Context) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
