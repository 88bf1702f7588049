package dto

import (
	"fmt"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest updates the monthly budget. Zero unsets the budget.
type SetBudgetRequest struct {
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// Validate rejects negative budgets; zero is allowed and means "unset".
func (r SetBudgetRequest) Validate() error {
	if r.MonthlyBudget.IsNegative() {
		return fmt.Errorf("%w: monthly budget cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// SetCurrencyRequest updates the display currency code.
type SetCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" validate:"required,uppercase,len=3"`
}

// Validate enforces a 3-letter uppercase ISO code.
func (r SetCurrencyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
