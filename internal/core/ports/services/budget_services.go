package services

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetAlertSvc evaluates budget thresholds and emits alerts. Evaluation is
// stateless: while the condition holds, repeated evaluations re-emit the same
// alert; deduplication is the notifier's concern.
type BudgetAlertSvc interface {
	// EvaluateBudget checks current-period spending against the configured
	// monthly budget and notifies. Returns the alert emitted, or nil when no
	// threshold was crossed or no budget is set.
	EvaluateBudget(ctx context.Context, now time.Time) (*domain.BudgetAlert, error)
}

// SettingsSvc exposes the budget/currency settings to the outer surface.
type SettingsSvc interface {
	GetBudgetSettings(ctx context.Context) (domain.BudgetSettings, error)
	SetMonthlyBudget(ctx context.Context, amount decimal.Decimal) error
	SetBudgetPeriod(ctx context.Context, period string) error
	SetCurrency(ctx context.Context, currencyCode string) error
}
