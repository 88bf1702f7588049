package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
)

// BackupFileName is the fixed name of the backup document on disk.
const BackupFileName = "finance_tracker_backup.json"

// backupService implements the BackupSvc interface. It talks to the
// transaction repository directly rather than through the service so that a
// corrupt ledger fails the export instead of silently exporting an empty
// document over a previous good backup.
type backupService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	backupDir    string
}

// NewBackupService creates the export/import service. backupDir is where
// ExportToFile writes its document.
func NewBackupService(txnRepo portsrepo.TransactionRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade, backupDir string) portssvc.BackupSvc {
	return &backupService{txnRepo: txnRepo, settingsRepo: settingsRepo, backupDir: backupDir}
}

var _ portssvc.BackupSvc = (*backupService)(nil)

func (s *backupService) Export(ctx context.Context, w io.Writer) (int, error) {
	txns, err := s.txnRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read ledger for export: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txns); err != nil {
		return 0, fmt.Errorf("failed to encode backup document: %w", err)
	}
	return len(txns), nil
}

func (s *backupService) ExportToFile(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create backup directory: %v", apperrors.ErrStorage, err)
	}

	path := filepath.Join(s.backupDir, BackupFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create backup file: %v", apperrors.ErrStorage, err)
	}
	defer f.Close()

	count, err := s.Export(ctx, f)
	if err != nil {
		return "", err
	}

	if err := s.settingsRepo.SetLastBackupTime(ctx, time.Now()); err != nil {
		return "", fmt.Errorf("failed to record backup time: %w", err)
	}

	s.LogInfo(ctx, "Backup written",
		slog.String("path", path),
		slog.Int("transaction_count", count))
	return path, nil
}

// Import decodes the document fully before touching the ledger: a malformed
// backup aborts with ErrDecode and leaves the existing collection untouched.
func (s *backupService) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read backup document: %v", apperrors.ErrStorage, err)
	}

	var txns []domain.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return 0, fmt.Errorf("%w: malformed backup document: %v", apperrors.ErrDecode, err)
	}

	// Clear first so the restored set is exact.
	if err := s.txnRepo.Clear(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear ledger before restore: %w", err)
	}

	for _, txn := range txns {
		if err := s.txnRepo.Upsert(ctx, txn); err != nil {
			return 0, fmt.Errorf("failed to restore transaction %s: %w", txn.ID, err)
		}
	}

	s.LogInfo(ctx, "Backup restored", slog.Int("transaction_count", len(txns)))
	return len(txns), nil
}

func (s *backupService) ImportFromFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to open backup file: %v", apperrors.ErrStorage, err)
	}
	defer f.Close()
	return s.Import(ctx, f)
}

func (s *backupService) LastBackup(ctx context.Context) (time.Time, error) {
	ts, err := s.settingsRepo.LastBackupTime(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read last backup time: %w", err)
	}
	return ts, nil
}
