package services_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/apperrors"
	"github.com/fintrack/fintrack/internal/core/domain"
	portssvc "github.com/fintrack/fintrack/internal/core/ports/services"
	"github.com/fintrack/fintrack/internal/core/services"
	"github.com/fintrack/fintrack/internal/repositories/database/kv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// memStore is an in-memory KVStore for exercising the real repositories
// without a database file.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// --- Test Suite ---
type BackupServiceTestSuite struct {
	suite.Suite
	store        *memStore
	txnRepo      *kv.KVTransactionRepository
	settingsRepo *kv.KVSettingsRepository
	backupDir    string
	ctx          context.Context
}

func (suite *BackupServiceTestSuite) SetupTest() {
	suite.store = newMemStore()
	suite.txnRepo = kv.NewKVTransactionRepository(suite.store).(*kv.KVTransactionRepository)
	suite.settingsRepo = kv.NewKVSettingsRepository(suite.store).(*kv.KVSettingsRepository)
	suite.backupDir = suite.T().TempDir()
	suite.ctx = context.Background()
}

func (suite *BackupServiceTestSuite) newService() portssvc.BackupSvc {
	return services.NewBackupService(suite.txnRepo, suite.settingsRepo, suite.backupDir)
}

func (suite *BackupServiceTestSuite) seed(titles ...string) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(titles))
	for i, title := range titles {
		txn := domain.Transaction{
			ID:        uuid.NewString(),
			Title:     title,
			Amount:    decimal.NewFromInt(int64(10 * (i + 1))),
			Category:  "Food & Dining",
			Date:      time.Now().UnixMilli(),
			IsExpense: true,
		}
		suite.Require().NoError(suite.txnRepo.Upsert(suite.ctx, txn))
		txns = append(txns, txn)
	}
	return txns
}

func (suite *BackupServiceTestSuite) TestExportImportRoundTrip() {
	seeded := suite.seed("coffee", "rent", "bus")
	svc := suite.newService()

	var buf bytes.Buffer
	count, err := svc.Export(suite.ctx, &buf)
	suite.Require().NoError(err)
	suite.Equal(3, count)

	// Wipe and restore from the exported document.
	suite.Require().NoError(suite.txnRepo.Clear(suite.ctx))

	restored, err := svc.Import(suite.ctx, strings.NewReader(buf.String()))
	suite.Require().NoError(err)
	suite.Equal(3, restored)

	got, err := suite.txnRepo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	for i := range seeded {
		suite.Equal(seeded[i].ID, got[i].ID)
		suite.Equal(seeded[i].Title, got[i].Title)
		suite.True(seeded[i].Amount.Equal(got[i].Amount))
		suite.Equal(seeded[i].Date, got[i].Date)
		suite.Equal(seeded[i].IsExpense, got[i].IsExpense)
	}
}

func (suite *BackupServiceTestSuite) TestImportReplacesExistingLedger() {
	suite.seed("old-1", "old-2")
	svc := suite.newService()

	doc := `[{"id":"new","title":"fresh","amount":"5","category":"Others","date":1,"isExpense":false}]`
	count, err := svc.Import(suite.ctx, strings.NewReader(doc))
	suite.Require().NoError(err)
	suite.Equal(1, count)

	got, err := suite.txnRepo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("new", got[0].ID)
}

func (suite *BackupServiceTestSuite) TestImportMalformedAbortsBeforeClearing() {
	suite.seed("keep-me")
	svc := suite.newService()

	_, err := svc.Import(suite.ctx, strings.NewReader("{definitely not json"))
	suite.Require().ErrorIs(err, apperrors.ErrDecode)

	got, err := suite.txnRepo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("keep-me", got[0].Title)
}

func (suite *BackupServiceTestSuite) TestExportCorruptLedgerFails() {
	suite.Require().NoError(suite.store.Set(suite.ctx, kv.KeyTransactions, "{corrupt"))
	svc := suite.newService()

	var buf bytes.Buffer
	_, err := svc.Export(suite.ctx, &buf)
	suite.Require().ErrorIs(err, apperrors.ErrDecode)
	suite.Zero(buf.Len(), "nothing should be written over a good backup")
}

func (suite *BackupServiceTestSuite) TestExportToFileRecordsTimestamp() {
	suite.seed("coffee")
	svc := suite.newService()

	before := time.Now().Add(-time.Second)
	path, err := svc.ExportToFile(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(filepath.Join(suite.backupDir, services.BackupFileName), path)

	data, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Contains(string(data), "coffee")

	ts, err := svc.LastBackup(suite.ctx)
	suite.Require().NoError(err)
	suite.False(ts.IsZero())
	suite.True(ts.After(before))
}

func (suite *BackupServiceTestSuite) TestLastBackupZeroWhenNeverTaken() {
	svc := suite.newService()
	ts, err := svc.LastBackup(suite.ctx)
	suite.Require().NoError(err)
	suite.True(ts.IsZero())
}

func TestBackupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}
