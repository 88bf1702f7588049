package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack/internal/core/ports/repositories"
)

// KeyTransactions is the store key holding the serialized ledger.
const KeyTransactions = "transactions"

// KVTransactionRepository persists the whole transaction collection as one
// JSON blob under a single key. The store has no partial-write primitive, so
// every mutation decodes, modifies and rewrites the full collection.
type KVTransactionRepository struct {
	store portsrepo.KVStore
}

// NewKVTransactionRepository creates the transaction repository over a store.
func NewKVTransactionRepository(store portsrepo.KVStore) portsrepo.TransactionRepositoryFacade {
	return &KVTransactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*KVTransactionRepository)(nil)

// GetAll returns an order-preserving copy of the collection. A never-written
// key yields an empty slice; a blob that fails to decode yields ErrDecode so
// callers can tell corruption apart from emptiness.
func (r *KVTransactionRepository) GetAll(ctx context.Context) ([]domain.Transaction, error) {
	raw, ok, err := r.store.Get(ctx, KeyTransactions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Transaction{}, nil
	}

	var txns []domain.Transaction
	if err := json.Unmarshal([]byte(raw), &txns); err != nil {
		return nil, fmt.Errorf("%w: malformed transaction collection: %v", apperrors.ErrDecode, err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

// GetByID does a linear scan for the first exact id match.
func (r *KVTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	txns, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ID == id {
			txn := txns[i]
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Upsert replaces the record with a matching id or appends when absent.
// Neither branch is an error. A corrupt stored blob still fails the call, so
// an unreadable ledger is never silently overwritten.
func (r *KVTransactionRepository) Upsert(ctx context.Context, txn domain.Transaction) error {
	txns, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range txns {
		if txns[i].ID == txn.ID {
			txns[i] = txn
			replaced = true
			break
		}
	}
	if !replaced {
		txns = append(txns, txn)
	}
	return r.saveAll(ctx, txns)
}

// Update has the same replace semantics as Upsert's update branch, but fails
// with ErrNotFound when no record carries the id.
func (r *KVTransactionRepository) Update(ctx context.Context, txn domain.Transaction) error {
	txns, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range txns {
		if txns[i].ID == txn.ID {
			txns[i] = txn
			return r.saveAll(ctx, txns)
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes any record with the id and persists the result. An absent
// id is a no-op, not an error.
func (r *KVTransactionRepository) Delete(ctx context.Context, id string) error {
	txns, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, t := range txns {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return r.saveAll(ctx, kept)
}

// Clear removes the whole collection key.
func (r *KVTransactionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, KeyTransactions)
}

func (r *KVTransactionRepository) saveAll(ctx context.Context, txns []domain.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode transaction collection: %w", err)
	}
	return r.store.Set(ctx, KeyTransactions, string(data))
}
