package kv

import (
	"database/sql"

	portsrepo "github.com/fintrack/fintrack/internal/core/ports/repositories"
)

// RepositoryProvider bundles the kv-backed repositories for wiring.
type RepositoryProvider struct {
	Store        portsrepo.KVStore
	Transactions portsrepo.TransactionRepositoryFacade
	Settings     portsrepo.SettingsRepositoryFacade
}

// NewRepositoryProvider constructs the store and all repositories over one
// database handle.
func NewRepositoryProvider(db *sql.DB) *RepositoryProvider {
	store := NewSQLiteStore(db)
	return &RepositoryProvider{
		Store:        store,
		Transactions: NewKVTransactionRepository(store),
		Settings:     NewKVSettingsRepository(store),
	}
}
