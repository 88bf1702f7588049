package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fintrack/fintrack/internal/charts"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
	"github.com/fintrack/fintrack/internal/core/services"
	"github.com/fintrack/fintrack/internal/dto"
	"github.com/fintrack/fintrack/internal/notifier"
	"github.com/fintrack/fintrack/internal/platform/config"
	"github.com/fintrack/fintrack/internal/repositories/database/kv"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/database"
	"github.com/shopspring/decimal"
)

const usage = `fintrack - personal finance tracker

Usage:
  fintrack add -title <t> -amount <a> -category <c> [-date <YYYY-MM-DD>] [-income]
  fintrack list
  fintrack delete -id <id>
  fintrack summary
  fintrack categories
  fintrack budget [-set <amount>] [-currency <code>]
  fintrack backup
  fintrack restore -file <path>
  fintrack chart [-out <path>]
`

// app bundles the wired services the subcommands operate on.
type app struct {
	cfg          *config.Config
	txnSvc       portssvc.TransactionSvcFacade
	reportingSvc portssvc.ReportingSvc
	settingsSvc  portssvc.SettingsSvc
	alertSvc     portssvc.BudgetAlertSvc
	backupSvc    portssvc.BackupSvc
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	level := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := database.NewSQLiteDB(cfg.DataPath)
	if err != nil {
		logger.Error("Failed to open ledger database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := kv.RunMigrations(cfg.DataPath); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := kv.NewRepositoryProvider(db)
	txnSvc := services.NewTransactionService(repos.Transactions)
	settingsSvc := services.NewSettingsService(repos.Settings)
	reportingSvc := services.NewReportingService(txnSvc, settingsSvc)
	alertSvc := services.NewBudgetAlertService(reportingSvc, settingsSvc, notifier.NewConsoleNotifier(os.Stdout))
	backupSvc := services.NewBackupService(repos.Transactions, repos.Settings, cfg.BackupDir)

	a := &app{
		cfg:          cfg,
		txnSvc:       txnSvc,
		reportingSvc: reportingSvc,
		settingsSvc:  settingsSvc,
		alertSvc:     alertSvc,
		backupSvc:    backupSvc,
	}

	ctx := services.ContextWithLogger(context.Background(), logger)

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "add":
		return a.cmdAdd(ctx, args)
	case "list":
		return a.cmdList(ctx)
	case "delete":
		return a.cmdDelete(ctx, args)
	case "summary":
		return a.cmdSummary(ctx)
	case "categories":
		return a.cmdCategories(ctx)
	case "budget":
		return a.cmdBudget(ctx, args)
	case "backup":
		return a.cmdBackup(ctx)
	case "restore":
		return a.cmdRestore(ctx, args)
	case "chart":
		return a.cmdChart(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "transaction title")
	amount := fs.String("amount", "", "positive amount")
	category := fs.String("category", "", "category name")
	date := fs.String("date", "", "date as YYYY-MM-DD, defaults to today")
	income := fs.Bool("income", false, "record as income instead of expense")
	fs.Parse(args)

	amt, err := decimal.NewFromString(strings.TrimSpace(*amount))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amount, err)
	}

	when := time.Now()
	if *date != "" {
		when, err = time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", *date, err)
		}
	}

	txn, err := a.txnSvc.CreateTransaction(ctx, dto.CreateTransactionRequest{
		Title:     strings.TrimSpace(*title),
		Amount:    amt,
		Category:  *category,
		Date:      when.UnixMilli(),
		IsExpense: !*income,
	})
	if err != nil {
		return err
	}
	fmt.Printf("recorded %s (%s)\n", txn.Title, txn.ID)

	// Evaluate after every mutation, matching the dashboard behavior.
	_, err = a.alertSvc.EvaluateBudget(ctx, time.Now())
	return err
}

func (a *app) cmdList(ctx context.Context) error {
	txns, err := a.txnSvc.ListTransactions(ctx)
	if err != nil {
		return err
	}
	settings, err := a.settingsSvc.GetBudgetSettings(ctx)
	if err != nil {
		return err
	}
	for _, t := range txns {
		fmt.Printf("%s  %-12s %-16s %10s  %s\n",
			t.Time(time.Local).Format("2006-01-02"),
			t.Category,
			t.Title,
			utils.FormatSigned(t.Amount, settings.CurrencyCode, t.IsExpense),
			t.ID)
	}
	return nil
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "transaction id")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("missing -id")
	}
	return a.txnSvc.DeleteTransaction(ctx, *id)
}

func (a *app) cmdSummary(ctx context.Context) error {
	summary, err := a.reportingSvc.Dashboard(ctx, time.Now(), a.cfg.RecentLimit)
	if err != nil {
		return err
	}

	cc := summary.CurrencyCode
	fmt.Printf("Balance: %s\n", utils.FormatAmount(summary.Totals.Balance, cc))
	fmt.Printf("Income:  %s\n", utils.FormatAmount(summary.Totals.Income, cc))
	fmt.Printf("Expense: %s\n", utils.FormatAmount(summary.Totals.Expense, cc))
	if summary.Budget.BudgetSet {
		fmt.Printf("Budget:  %s / %s (%d%%)\n",
			utils.FormatAmount(summary.Budget.PeriodExpense, cc),
			utils.FormatAmount(summary.Budget.MonthlyBudget, cc),
			summary.Budget.PercentUsed)
	} else {
		fmt.Println("Budget:  not set")
	}

	if len(summary.Recent) > 0 {
		fmt.Println("\nRecent transactions:")
		for _, t := range summary.Recent {
			fmt.Printf("  %s  %-16s %s\n",
				t.Time(time.Local).Format("2006-01-02"),
				t.Title,
				utils.FormatSigned(t.Amount, cc, t.IsExpense))
		}
	}

	// Same re-notification behavior as the dashboard: a standing condition
	// re-emits on every refresh.
	_, err = a.alertSvc.EvaluateBudget(ctx, time.Now())
	return err
}

func (a *app) cmdCategories(ctx context.Context) error {
	summaries, err := a.reportingSvc.CategoryAnalysis(ctx)
	if err != nil {
		return err
	}
	settings, err := a.settingsSvc.GetBudgetSettings(ctx)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Printf("%-16s %12s  %5.1f%%\n", s.Category, utils.FormatAmount(s.Amount, settings.CurrencyCode), s.Percentage)
	}
	return nil
}

func (a *app) cmdBudget(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("budget", flag.ExitOnError)
	set := fs.String("set", "", "set the monthly budget amount")
	currency := fs.String("currency", "", "set the currency code (e.g. USD)")
	fs.Parse(args)

	if *set != "" {
		amount, err := decimal.NewFromString(*set)
		if err != nil {
			return fmt.Errorf("invalid budget amount %q: %w", *set, err)
		}
		if err := a.settingsSvc.SetMonthlyBudget(ctx, amount); err != nil {
			return err
		}
	}
	if *currency != "" {
		if err := a.settingsSvc.SetCurrency(ctx, strings.ToUpper(*currency)); err != nil {
			return err
		}
	}

	settings, err := a.settingsSvc.GetBudgetSettings(ctx)
	if err != nil {
		return err
	}
	if settings.HasBudget() {
		fmt.Printf("Monthly budget: %s (%s)\n", utils.FormatAmount(settings.MonthlyBudget, settings.CurrencyCode), settings.BudgetPeriod)
	} else {
		fmt.Println("Monthly budget: not set")
	}
	return nil
}

func (a *app) cmdBackup(ctx context.Context) error {
	path, err := a.backupSvc.ExportToFile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("backup written to %s\n", path)
	return nil
}

func (a *app) cmdRestore(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	file := fs.String("file", "", "backup file to restore from")
	fs.Parse(args)
	if *file == "" {
		return fmt.Errorf("missing -file")
	}
	count, err := a.backupSvc.ImportFromFile(ctx, *file)
	if err != nil {
		return err
	}
	fmt.Printf("restored %d transactions\n", count)
	return nil
}

func (a *app) cmdChart(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	out := fs.String("out", a.cfg.ChartPath, "output PNG path")
	fs.Parse(args)

	summaries, err := a.reportingSvc.CategoryAnalysis(ctx)
	if err != nil {
		return err
	}
	png, err := charts.NewChartGenerator().RenderCategoryBreakdown(summaries)
	if err != nil {
		return err
	}
	if png == nil {
		fmt.Println("no expenses to chart")
		return nil
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	fmt.Printf("chart written to %s\n", *out)
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
