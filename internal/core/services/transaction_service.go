package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
	"github.com/fintrack/fintrack/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates the ledger mutation service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  req.Category,
		Date:      req.Date,
		IsExpense: req.IsExpense,
	}

	if err := s.txnRepo.Upsert(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to persist new transaction", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("category", txn.Category),
		slog.Bool("is_expense", txn.IsExpense))
	return &txn, nil
}

// ListTransactions returns the ledger snapshot. A corrupt blob is logged and
// treated as empty so the outer surface keeps working; callers that need to
// distinguish corruption from emptiness should use the repository directly.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.GetAll(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrDecode) {
			s.LogWarn(ctx, "Persisted ledger is corrupt, treating as empty", slog.String("error", err.Error()))
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	txn := req.ToDomainTransaction()
	if err := s.txnRepo.Update(ctx, txn); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", txn.ID))
	return &txn, nil
}

func (s *transactionService) UpsertTransaction(ctx context.Context, txn domain.Transaction) error {
	if err := s.txnRepo.Upsert(ctx, txn); err != nil {
		return fmt.Errorf("failed to upsert transaction %s: %w", txn.ID, err)
	}
	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.txnRepo.Delete(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", id))
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", id))
	return nil
}

func (s *transactionService) ClearTransactions(ctx context.Context) error {
	if err := s.txnRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	s.LogInfo(ctx, "Ledger cleared")
	return nil
}
