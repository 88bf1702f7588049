package dto

import (
	"fmt"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CreateTransactionRequest defines the data needed to record a new transaction.
// Validation lives here, at the boundary: the repository trusts its callers.
type CreateTransactionRequest struct {
	Title     string          `json:"title" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category" validate:"required"`
	Date      int64           `json:"date" validate:"gt=0"`
	IsExpense bool            `json:"isExpense"`
}

// Validate checks the request against the domain invariants: non-blank title,
// positive amount, category and date present.
func (r CreateTransactionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// UpdateTransactionRequest replaces an existing transaction wholesale; there
// is no partial field update.
type UpdateTransactionRequest struct {
	ID        string          `json:"id" validate:"required"`
	Title     string          `json:"title" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category" validate:"required"`
	Date      int64           `json:"date" validate:"gt=0"`
	IsExpense bool            `json:"isExpense"`
}

// Validate checks the request against the same invariants as creation, plus a
// present id.
func (r UpdateTransactionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ToDomainTransaction builds the domain record for an update request.
func (r UpdateTransactionRequest) ToDomainTransaction() domain.Transaction {
	return domain.Transaction{
		ID:        r.ID,
		Title:     r.Title,
		Amount:    r.Amount,
		Category:  r.Category,
		Date:      r.Date,
		IsExpense: r.IsExpense,
	}
}
