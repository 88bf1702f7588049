package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/fintrack/fintrack/internal/core/domain"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
)

// ConsoleNotifier writes budget alerts to a stream. It is the CLI stand-in
// for the system notification surface; it performs no deduplication, so a
// standing over-budget condition prints on every evaluation.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

var _ portssvc.Notifier = (*ConsoleNotifier)(nil)

func (n *ConsoleNotifier) Notify(_ context.Context, alert domain.BudgetAlert) error {
	if _, err := fmt.Fprintf(n.out, "[%s] %s: %s\n", alert.Kind, alert.Title, alert.Message); err != nil {
		return fmt.Errorf("failed to write alert: %w", err)
	}
	return nil
}
