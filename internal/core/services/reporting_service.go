package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fintrack/fintrack/internal/core/domain"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
	"github.com/fintrack/fintrack/internal/utils/analytics"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvc interface. It holds no state
// of its own: every call takes a fresh snapshot and recomputes, which is fine
// at personal-ledger scale.
type reportingService struct {
	BaseService
	txnSvc      portssvc.TransactionReaderSvc
	settingsSvc portssvc.SettingsSvc
}

// NewReportingService creates the derived-analytics service.
func NewReportingService(txnSvc portssvc.TransactionReaderSvc, settingsSvc portssvc.SettingsSvc) portssvc.ReportingSvc {
	return &reportingService{txnSvc: txnSvc, settingsSvc: settingsSvc}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// Dashboard assembles the main-screen summary: overall totals, budget status
// for the current period, and the most recent transactions.
func (s *reportingService) Dashboard(ctx context.Context, now time.Time, recentLimit int) (*domain.DashboardSummary, error) {
	txns, err := s.txnSvc.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for dashboard: %w", err)
	}

	settings, err := s.settingsSvc.GetBudgetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget settings: %w", err)
	}

	totals := analytics.Totals(txns)
	periodExpense := analytics.CurrentPeriodExpense(txns, now)

	recent := make([]domain.Transaction, len(txns))
	copy(recent, txns)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if recentLimit >= 0 && len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	summary := &domain.DashboardSummary{
		Totals: totals,
		Budget: domain.BudgetStatus{
			MonthlyBudget: settings.MonthlyBudget,
			PeriodExpense: periodExpense,
			PercentUsed:   analytics.BudgetUsagePercentage(periodExpense, settings.MonthlyBudget),
			BudgetSet:     settings.HasBudget(),
		},
		CurrencyCode: settings.CurrencyCode,
		Recent:       recent,
	}

	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("transaction_count", len(txns)),
		slog.String("balance", totals.Balance.String()),
		slog.Int("budget_percent_used", summary.Budget.PercentUsed))
	return summary, nil
}

// CategoryAnalysis returns the expense breakdown over the default vocabulary.
func (s *reportingService) CategoryAnalysis(ctx context.Context) ([]domain.CategorySummary, error) {
	txns, err := s.txnSvc.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for category analysis: %w", err)
	}
	return analytics.CategoryBreakdown(txns, domain.DefaultCategories), nil
}

// CurrentPeriodExpense sums this calendar month's expenses.
func (s *reportingService) CurrentPeriodExpense(ctx context.Context, now time.Time) (decimal.Decimal, error) {
	txns, err := s.txnSvc.ListTransactions(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load ledger for period expense: %w", err)
	}
	return analytics.CurrentPeriodExpense(txns, now), nil
}
