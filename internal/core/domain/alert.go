package domain

// AlertKind identifies the budget threshold that was crossed.
type AlertKind string

const (
	BudgetWarning  AlertKind = "BUDGET_WARNING"  // 80% <= usage < 100%
	BudgetExceeded AlertKind = "BUDGET_EXCEEDED" // usage >= 100%
)

// BudgetAlert is the event handed to the notifier when a threshold is crossed.
// PercentUsed is the raw, unclamped percentage, so an exceeded budget reports
// values above 100.
type BudgetAlert struct {
	Kind        AlertKind `json:"kind"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	PercentUsed float64   `json:"percentUsed"`
}
