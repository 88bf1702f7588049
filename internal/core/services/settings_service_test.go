package services_test

import (
	"context"
	"testing"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/fintrack/fintrack/internal/core/services"
	"github.com/fintrack/fintrack/internal/repositories/database/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := services.NewSettingsService(kv.NewKVSettingsRepository(store))

	t.Run("defaults before anything is written", func(t *testing.T) {
		settings, err := svc.GetBudgetSettings(ctx)
		require.NoError(t, err)
		assert.False(t, settings.HasBudget())
		assert.Equal(t, domain.DefaultCurrencyCode, settings.CurrencyCode)
		assert.Equal(t, domain.DefaultBudgetPeriod, settings.BudgetPeriod)
	})

	t.Run("negative budget is rejected", func(t *testing.T) {
		err := svc.SetMonthlyBudget(ctx, decimal.NewFromInt(-50))
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("lowercase currency is rejected", func(t *testing.T) {
		err := svc.SetCurrency(ctx, "usd")
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("valid settings round-trip", func(t *testing.T) {
		require.NoError(t, svc.SetMonthlyBudget(ctx, decimal.NewFromInt(200)))
		require.NoError(t, svc.SetCurrency(ctx, "EUR"))

		settings, err := svc.GetBudgetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, settings.MonthlyBudget.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, "EUR", settings.CurrencyCode)
		assert.True(t, settings.HasBudget())
	})

	t.Run("zero budget unsets", func(t *testing.T) {
		require.NoError(t, svc.SetMonthlyBudget(ctx, decimal.Zero))
		settings, err := svc.GetBudgetSettings(ctx)
		require.NoError(t, err)
		assert.False(t, settings.HasBudget())
	})
}
