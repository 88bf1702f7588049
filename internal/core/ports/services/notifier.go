package services

import (
	"context"

	"github.com/fintrack/fintrack/internal/core/domain"
)

// Notifier is the outbound notification boundary. The core only produces
// alert events; presentation, permissions and deduplication live behind this
// interface.
type Notifier interface {
	Notify(ctx context.Context, alert domain.BudgetAlert) error
}
