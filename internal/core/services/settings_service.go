package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrack/fintrack/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
	"github.com/fintrack/fintrack/internal/dto"
	"github.com/shopspring/decimal"
)

// settingsService implements the SettingsSvc interface over the settings
// repository. Settings are explicit inputs to analytics and alerting rather
// than ambient global state.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates the budget/currency settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) GetBudgetSettings(ctx context.Context) (domain.BudgetSettings, error) {
	settings, err := s.settingsRepo.GetBudgetSettings(ctx)
	if err != nil {
		return domain.BudgetSettings{}, fmt.Errorf("failed to load budget settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) SetMonthlyBudget(ctx context.Context, amount decimal.Decimal) error {
	req := dto.SetBudgetRequest{MonthlyBudget: amount}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.settingsRepo.SetMonthlyBudget(ctx, amount); err != nil {
		return fmt.Errorf("failed to save monthly budget: %w", err)
	}
	s.LogInfo(ctx, "Monthly budget updated", slog.String("amount", amount.String()))
	return nil
}

func (s *settingsService) SetBudgetPeriod(ctx context.Context, period string) error {
	if err := s.settingsRepo.SetBudgetPeriod(ctx, period); err != nil {
		return fmt.Errorf("failed to save budget period: %w", err)
	}
	return nil
}

func (s *settingsService) SetCurrency(ctx context.Context, currencyCode string) error {
	req := dto.SetCurrencyRequest{CurrencyCode: currencyCode}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.settingsRepo.SetCurrency(ctx, currencyCode); err != nil {
		return fmt.Errorf("failed to save currency: %w", err)
	}
	s.LogInfo(ctx, "Currency updated", slog.String("currency_code", currencyCode))
	return nil
}
