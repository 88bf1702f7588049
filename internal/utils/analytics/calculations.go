package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Totals sums the ledger snapshot into income, expense and balance.
// Balance = Income - Expense, exactly; no currency conversion is applied.
func Totals(transactions []domain.Transaction) domain.Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range transactions {
		if txn.IsExpense {
			expense = expense.Add(txn.Amount)
		} else {
			income = income.Add(txn.Amount)
		}
	}
	return domain.Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryBreakdown groups expense transactions by category and computes each
// category's share of total expenses. Every known category appears at least
// once, union'd with any category observed in the data but missing from the
// vocabulary. When there are no expenses at all, every entry carries zero
// amount and zero percentage. Result is ordered by amount descending; ties
// keep first-encountered order.
func CategoryBreakdown(transactions []domain.Transaction, knownCategories []string) []domain.CategorySummary {
	sums := make(map[string]decimal.Decimal, len(knownCategories))
	order := make([]string, 0, len(knownCategories))
	seen := make(map[string]bool, len(knownCategories))

	for _, c := range knownCategories {
		if !seen[c] {
			sums[c] = decimal.Zero
			order = append(order, c)
			seen[c] = true
		}
	}

	total := decimal.Zero
	for _, txn := range transactions {
		if !txn.IsExpense {
			continue
		}
		if !seen[txn.Category] {
			sums[txn.Category] = decimal.Zero
			order = append(order, txn.Category)
			seen[txn.Category] = true
		}
		sums[txn.Category] = sums[txn.Category].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	summaries := make([]domain.CategorySummary, 0, len(order))
	for _, c := range order {
		amount := sums[c]
		percentage := 0.0
		if total.IsPositive() {
			percentage = amount.Mul(oneHundred).Div(total).InexactFloat64()
		}
		summaries = append(summaries, domain.CategorySummary{
			Category:   c,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Amount.GreaterThan(summaries[j].Amount)
	})
	return summaries
}

// CurrentPeriodExpense sums expense amounts dated in the same calendar month
// and year as now, interpreted in now's location.
func CurrentPeriodExpense(transactions []domain.Transaction, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.IsExpense && txn.InMonth(now) {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// BudgetUsagePercentage returns the display percentage of budget consumed:
// 0 when no budget is set, otherwise min(100, floor(100 * expense / budget)).
// The clamp is display-only; alerting works on the unclamped value.
func BudgetUsagePercentage(periodExpense, monthlyBudget decimal.Decimal) int {
	if !monthlyBudget.IsPositive() {
		return 0
	}
	pct := int(periodExpense.Mul(oneHundred).Div(monthlyBudget).IntPart())
	if pct > 100 {
		return 100
	}
	return pct
}

// EvaluateBudgetAlert applies the alert thresholds to the unclamped usage
// percentage. No budget means no evaluation at all. Returns nil when usage
// is below the warning threshold.
func EvaluateBudgetAlert(periodExpense, monthlyBudget decimal.Decimal) *domain.BudgetAlert {
	if !monthlyBudget.IsPositive() {
		return nil
	}
	pct := periodExpense.Mul(oneHundred).Div(monthlyBudget).InexactFloat64()
	switch {
	case pct >= 100:
		return &domain.BudgetAlert{
			Kind:        domain.BudgetExceeded,
			Title:       "Budget Exceeded!",
			Message:     fmt.Sprintf("You've exceeded your monthly budget (%.0f%% used).", pct),
			PercentUsed: pct,
		}
	case pct >= 80:
		return &domain.BudgetAlert{
			Kind:        domain.BudgetWarning,
			Title:       "Budget Warning",
			Message:     fmt.Sprintf("You've used %.0f%% of your monthly budget.", pct),
			PercentUsed: pct,
		}
	default:
		return nil
	}
}
