package services

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvc derives aggregate views from the ledger. Every call recomputes
// from a full snapshot; nothing is cached.
type ReportingSvc interface {
	// Dashboard assembles overall totals, budget status and the most recent
	// transactions (newest first, at most recentLimit entries).
	Dashboard(ctx context.Context, now time.Time, recentLimit int) (*domain.DashboardSummary, error)

	// CategoryAnalysis returns the expense breakdown across the default
	// category vocabulary, ordered by amount descending.
	CategoryAnalysis(ctx context.Context) ([]domain.CategorySummary, error)

	// CurrentPeriodExpense sums expenses in the same calendar month and year
	// as now.
	CurrentPeriodExpense(ctx context.Context, now time.Time) (decimal.Decimal, error)
}
