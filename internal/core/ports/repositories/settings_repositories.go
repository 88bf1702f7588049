package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsReader defines read operations for the scalar settings.
type SettingsReader interface {
	// GetBudgetSettings returns the settings with defaults applied for any
	// key that was never written (zero budget, "Monthly", "USD").
	GetBudgetSettings(ctx context.Context) (domain.BudgetSettings, error)

	// LastBackupTime returns the recorded time of the last backup, or the
	// zero time if no backup was ever taken.
	LastBackupTime(ctx context.Context) (time.Time, error)
}

// SettingsWriter defines write operations for the scalar settings.
type SettingsWriter interface {
	SetMonthlyBudget(ctx context.Context, amount decimal.Decimal) error
	SetBudgetPeriod(ctx context.Context, period string) error
	SetCurrency(ctx context.Context, currencyCode string) error
	SetLastBackupTime(ctx context.Context, ts time.Time) error
}

// SettingsRepositoryFacade combines all settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
