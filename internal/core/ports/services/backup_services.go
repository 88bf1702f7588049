package services

import (
	"context"
	"io"
	"time"
)

// BackupSvc serializes the ledger to a transport-agnostic JSON document and
// restores it. decode(encode(transactions)) == transactions, order and all
// fields preserved.
type BackupSvc interface {
	// Export writes the full ledger as a JSON array and returns the number of
	// records written.
	Export(ctx context.Context, w io.Writer) (int, error)

	// ExportToFile writes the backup document into the configured backup
	// directory, records the backup timestamp, and returns the file path.
	ExportToFile(ctx context.Context) (string, error)

	// Import decodes a backup document, clears the ledger, and re-inserts
	// every record. A document that fails to decode aborts the import before
	// anything is cleared.
	Import(ctx context.Context, r io.Reader) (int, error)

	// ImportFromFile restores from a backup file on disk.
	ImportFromFile(ctx context.Context, path string) (int, error)

	// LastBackup returns when the last backup was taken, or the zero time.
	LastBackup(ctx context.Context) (time.Time, error)
}
