package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/fintrack/internal/core/domain"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
	"github.com/fintrack/fintrack/internal/utils/analytics"
)

// budgetAlertService implements the BudgetAlertSvc interface. Evaluation is
// stateless; nothing is remembered between calls, so an over-threshold budget
// re-notifies on every evaluation.
type budgetAlertService struct {
	BaseService
	reportingSvc portssvc.ReportingSvc
	settingsSvc  portssvc.SettingsSvc
	notifier     portssvc.Notifier
}

// NewBudgetAlertService creates the threshold evaluator. notifier may be nil,
// in which case alerts are computed and returned but not delivered.
func NewBudgetAlertService(reportingSvc portssvc.ReportingSvc, settingsSvc portssvc.SettingsSvc, notifier portssvc.Notifier) portssvc.BudgetAlertSvc {
	return &budgetAlertService{reportingSvc: reportingSvc, settingsSvc: settingsSvc, notifier: notifier}
}

var _ portssvc.BudgetAlertSvc = (*budgetAlertService)(nil)

func (s *budgetAlertService) EvaluateBudget(ctx context.Context, now time.Time) (*domain.BudgetAlert, error) {
	settings, err := s.settingsSvc.GetBudgetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for budget evaluation: %w", err)
	}
	if !settings.HasBudget() {
		return nil, nil
	}

	periodExpense, err := s.reportingSvc.CurrentPeriodExpense(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute period expense for budget evaluation: %w", err)
	}

	alert := analytics.EvaluateBudgetAlert(periodExpense, settings.MonthlyBudget)
	if alert == nil {
		return nil, nil
	}

	s.LogInfo(ctx, "Budget threshold crossed",
		slog.String("kind", string(alert.Kind)),
		slog.Float64("percent_used", alert.PercentUsed))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, *alert); err != nil {
			s.LogError(ctx, err, "Failed to deliver budget alert", slog.String("kind", string(alert.Kind)))
			return alert, fmt.Errorf("failed to deliver budget alert: %w", err)
		}
	}
	return alert, nil
}
