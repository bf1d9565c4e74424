package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Journal statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Operation kinds recorded in the journal.
const (
	KindConvert  = "convert"
	KindProbe    = "probe"
	KindDownload = "download"
)

// Record is one journaled operation outcome.
type Record struct {
	ID          int64
	OperationID string
	Kind        string
	Source      string
	Destination string
	Status      string
	Detail      string
	CreatedAt   time.Time
}

// Append journals one operation outcome and returns its row id.
func (s *Store) Append(ctx context.Context, record Record) (int64, error) {
	if strings.TrimSpace(record.Kind) == "" {
		return 0, errors.New("record kind required")
	}
	if strings.TrimSpace(record.Status) == "" {
		return 0, errors.New("record status required")
	}
	timestamp := record.CreatedAt
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO operations (
            operation_id, kind, source, destination, status, detail, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.OperationID,
		record.Kind,
		record.Source,
		nullableString(record.Destination),
		record.Status,
		nullableString(record.Detail),
		timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert operation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT id, operation_id, kind, source, destination, status, detail, created_at
         FROM operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return records, nil
}

// Stats returns journal row counts grouped by status.
func (s *Store) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		"SELECT status, COUNT(1) FROM operations GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return stats, nil
}

// Clear removes all journal entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, "DELETE FROM operations"); err != nil {
		return fmt.Errorf("clear operations: %w", err)
	}
	return nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		record      Record
		destination sql.NullString
		detail      sql.NullString
		createdAt   string
	)
	if err := rows.Scan(
		&record.ID,
		&record.OperationID,
		&record.Kind,
		&record.Source,
		&destination,
		&record.Status,
		&detail,
		&createdAt,
	); err != nil {
		return Record{}, fmt.Errorf("scan operation: %w", err)
	}
	record.Destination = destination.String
	record.Detail = detail.String
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		record.CreatedAt = parsed
	}
	return record, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
