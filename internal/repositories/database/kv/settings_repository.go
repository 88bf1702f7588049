package kv

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store keys for the scalar settings.
const (
	KeyMonthlyBudget  = "monthly_budget"
	KeyBudgetPeriod   = "budget_period"
	KeyCurrency       = "currency"
	KeyLastBackupTime = "last_backup_time"
)

// KVSettingsRepository persists the scalar settings, one store key each.
// Unwritten keys read back as their documented defaults.
type KVSettingsRepository struct {
	store portsrepo.KVStore
}

// NewKVSettingsRepository creates the settings repository over a store.
func NewKVSettingsRepository(store portsrepo.KVStore) portsrepo.SettingsRepositoryFacade {
	return &KVSettingsRepository{store: store}
}

var _ portsrepo.SettingsRepositoryFacade = (*KVSettingsRepository)(nil)

func (r *KVSettingsRepository) GetBudgetSettings(ctx context.Context) (domain.BudgetSettings, error) {
	settings := domain.BudgetSettings{
		MonthlyBudget: decimal.Zero,
		BudgetPeriod:  domain.DefaultBudgetPeriod,
		CurrencyCode:  domain.DefaultCurrencyCode,
	}

	if raw, ok, err := r.store.Get(ctx, KeyMonthlyBudget); err != nil {
		return domain.BudgetSettings{}, err
	} else if ok {
		budget, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.BudgetSettings{}, fmt.Errorf("%w: malformed monthly budget %q: %v", apperrors.ErrDecode, raw, err)
		}
		settings.MonthlyBudget = budget
	}

	if raw, ok, err := r.store.Get(ctx, KeyBudgetPeriod); err != nil {
		return domain.BudgetSettings{}, err
	} else if ok {
		settings.BudgetPeriod = raw
	}

	if raw, ok, err := r.store.Get(ctx, KeyCurrency); err != nil {
		return domain.BudgetSettings{}, err
	} else if ok {
		settings.CurrencyCode = raw
	}

	return settings, nil
}

func (r *KVSettingsRepository) SetMonthlyBudget(ctx context.Context, amount decimal.Decimal) error {
	return r.store.Set(ctx, KeyMonthlyBudget, amount.String())
}

func (r *KVSettingsRepository) SetBudgetPeriod(ctx context.Context, period string) error {
	return r.store.Set(ctx, KeyBudgetPeriod, period)
}

func (r *KVSettingsRepository) SetCurrency(ctx context.Context, currencyCode string) error {
	return r.store.Set(ctx, KeyCurrency, currencyCode)
}

// LastBackupTime returns the zero time when no backup was ever recorded.
func (r *KVSettingsRepository) LastBackupTime(ctx context.Context) (time.Time, error) {
	raw, ok, err := r.store.Get(ctx, KeyLastBackupTime)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, nil
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed backup timestamp %q: %v", apperrors.ErrDecode, raw, err)
	}
	return time.UnixMilli(millis), nil
}

func (r *KVSettingsRepository) SetLastBackupTime(ctx context.Context, ts time.Time) error {
	return r.store.Set(ctx, KeyLastBackupTime, strconv.FormatInt(ts.UnixMilli(), 10))
}
