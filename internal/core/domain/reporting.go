package domain

import (
	"github.com/shopspring/decimal"
)

// CategorySummary is one row of the expense breakdown. Derived and ephemeral,
// recomputed on every analytics pass, never persisted.
type CategorySummary struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"` // Share of total expenses, 0-100
}

// Totals aggregates the whole ledger. Balance = Income - Expense, exactly.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// BudgetStatus describes current-period spending against the configured budget.
type BudgetStatus struct {
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	PeriodExpense decimal.Decimal `json:"periodExpense"`
	PercentUsed   int             `json:"percentUsed"` // Clamped to 0..100 for display
	BudgetSet     bool            `json:"budgetSet"`
}

// DashboardSummary is what the main screen renders: overall totals, budget
// status and the most recent transactions.
type DashboardSummary struct {
	Totals       Totals        `json:"totals"`
	Budget       BudgetStatus  `json:"budget"`
	CurrencyCode string        `json:"currencyCode"`
	Recent       []Transaction `json:"recent"`
}
