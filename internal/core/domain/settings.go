package domain

import "github.com/shopspring/decimal"

// Default values applied when a setting has never been written.
const (
	DefaultBudgetPeriod = "Monthly"
	DefaultCurrencyCode = "USD"
)

// BudgetSettings holds the scalar settings the analytics and alerting layers
// consume. MonthlyBudget of zero means no budget is configured.
type BudgetSettings struct {
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	BudgetPeriod  string          `json:"budgetPeriod"` // Currently always "Monthly"; kept for forward compatibility
	CurrencyCode  string          `json:"currencyCode"`
}

// HasBudget reports whether a positive monthly budget is configured.
func (s BudgetSettings) HasBudget() bool {
	return s.MonthlyBudget.IsPositive()
}
