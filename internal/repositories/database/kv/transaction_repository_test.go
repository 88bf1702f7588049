package kv_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/fintrack/fintrack/internal/repositories/database/kv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One connection so every statement sees the same in-memory database.
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type TransactionRepositorySuite struct {
	suite.Suite
	store *kv.SQLiteStore
	repo  *kv.KVTransactionRepository
	ctx   context.Context
}

func (s *TransactionRepositorySuite) SetupTest() {
	db := newTestDB(s.T())
	s.store = kv.NewSQLiteStore(db)
	s.repo = kv.NewKVTransactionRepository(s.store).(*kv.KVTransactionRepository)
	s.ctx = context.Background()
}

func (s *TransactionRepositorySuite) newTxn(title string, amount string) domain.Transaction {
	return domain.Transaction{
		ID:        uuid.NewString(),
		Title:     title,
		Amount:    decimal.RequireFromString(amount),
		Category:  "Food & Dining",
		Date:      time.Now().UnixMilli(),
		IsExpense: true,
	}
}

func (s *TransactionRepositorySuite) TestGetAll_EmptyWhenNeverWritten() {
	txns, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *TransactionRepositorySuite) TestUpsertThenGetByID() {
	txn := s.newTxn("Groceries", "42.50")
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	got, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Equal(txn.ID, got.ID)
	s.Equal(txn.Title, got.Title)
	s.True(txn.Amount.Equal(got.Amount))
	s.Equal(txn.Category, got.Category)
	s.Equal(txn.Date, got.Date)
	s.Equal(txn.IsExpense, got.IsExpense)
}

func (s *TransactionRepositorySuite) TestUpsert_ReplacesById() {
	txn := s.newTxn("Groceries", "42.50")
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	txn.Title = "Weekly groceries"
	txn.Amount = decimal.RequireFromString("45.00")
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	txns, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(txns, 1)
	s.Equal("Weekly groceries", txns[0].Title)
}

func (s *TransactionRepositorySuite) TestGetAll_PreservesInsertionOrder() {
	first := s.newTxn("first", "1")
	second := s.newTxn("second", "2")
	third := s.newTxn("third", "3")
	for _, txn := range []domain.Transaction{first, second, third} {
		s.Require().NoError(s.repo.Upsert(s.ctx, txn))
	}

	txns, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(txns, 3)
	s.Equal(first.ID, txns[0].ID)
	s.Equal(second.ID, txns[1].ID)
	s.Equal(third.ID, txns[2].ID)
}

func (s *TransactionRepositorySuite) TestUpdate_NotFoundOnMissingId() {
	err := s.repo.Update(s.ctx, s.newTxn("ghost", "1"))
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionRepositorySuite) TestUpdate_ReplacesExisting() {
	txn := s.newTxn("Groceries", "42.50")
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	txn.Amount = decimal.RequireFromString("50")
	s.Require().NoError(s.repo.Update(s.ctx, txn))

	got, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.True(got.Amount.Equal(decimal.RequireFromString("50")))
}

func (s *TransactionRepositorySuite) TestUpsertVsUpdate_ContractAsymmetry() {
	txn := s.newTxn("new", "5")

	// Update on a missing id fails; Upsert on the same id inserts.
	s.Require().ErrorIs(s.repo.Update(s.ctx, txn), apperrors.ErrNotFound)
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	got, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Equal(txn.ID, got.ID)
}

func (s *TransactionRepositorySuite) TestDelete_ThenGetByIDIsNotFound() {
	txn := s.newTxn("Groceries", "42.50")
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	s.Require().NoError(s.repo.Delete(s.ctx, txn.ID))

	_, err := s.repo.GetByID(s.ctx, txn.ID)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_AbsentIdIsNoop() {
	txn := s.newTxn("keep", "1")
	s.Require().NoError(s.repo.Upsert(s.ctx, txn))

	s.Require().NoError(s.repo.Delete(s.ctx, "no-such-id"))

	txns, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(txns, 1)
}

func (s *TransactionRepositorySuite) TestClear_ThenGetAllIsEmpty() {
	s.Require().NoError(s.repo.Upsert(s.ctx, s.newTxn("a", "1")))
	s.Require().NoError(s.repo.Upsert(s.ctx, s.newTxn("b", "2")))

	s.Require().NoError(s.repo.Clear(s.ctx))

	txns, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(txns)

	// Idempotent regardless of prior content.
	s.Require().NoError(s.repo.Clear(s.ctx))
}

func (s *TransactionRepositorySuite) TestGetAll_CorruptBlobIsDecodeError() {
	s.Require().NoError(s.store.Set(s.ctx, kv.KeyTransactions, "{not json"))

	_, err := s.repo.GetAll(s.ctx)
	s.Require().ErrorIs(err, apperrors.ErrDecode)
}

func (s *TransactionRepositorySuite) TestUpsert_DoesNotOverwriteCorruptLedger() {
	s.Require().NoError(s.store.Set(s.ctx, kv.KeyTransactions, "{not json"))

	err := s.repo.Upsert(s.ctx, s.newTxn("new", "1"))
	s.Require().ErrorIs(err, apperrors.ErrDecode)

	// The corrupt blob is still there, untouched.
	raw, ok, err := s.store.Get(s.ctx, kv.KeyTransactions)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("{not json", raw)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}
