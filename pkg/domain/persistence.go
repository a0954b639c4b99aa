package domain

import "context"

// RecordStore is the durable home of the inventory records. Each record is
// one encoded toy line without its trailing newline.
type RecordStore interface {
	// ReadRecords returns the stored lines in order. A store whose backing
	// source does not exist yet creates it empty and returns no lines.
	ReadRecords(ctx context.Context) ([]string, error)
	// WriteRecords replaces the stored lines with records.
	WriteRecords(ctx context.Context, records []string) error
}
