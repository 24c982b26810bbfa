package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// timestampLayout is fixed-width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Add inserts a record and returns it with ID and CreatedAt populated.
func (s *Store) Add(ctx context.Context, record Record) (*Record, error) {
	if strings.TrimSpace(record.BasePath) == "" {
		return nil, errors.New("history: base path is required")
	}
	if strings.TrimSpace(record.Engine) == "" {
		return nil, errors.New("history: engine is required")
	}
	if record.Status == "" {
		record.Status = StatusFailed
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	record.CreatedAt = record.CreatedAt.UTC()

	var missingJSON any
	if len(record.Missing) > 0 {
		data, err := json.Marshal(record.Missing)
		if err != nil {
			return nil, fmt.Errorf("marshal missing outputs: %w", err)
		}
		missingJSON = string(data)
	}
	var metadataJSON any
	if len(record.Metadata) > 0 {
		if !json.Valid(record.Metadata) {
			return nil, errors.New("history: metadata is not valid JSON")
		}
		metadataJSON = string(record.Metadata)
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO dump_history (
            session_id, engine, system, media, base_path, operation, status,
            missing_json, metadata_json, error_message, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.SessionID,
		record.Engine,
		nullableString(record.System),
		nullableString(record.Media),
		record.BasePath,
		string(record.Operation),
		string(record.Status),
		missingJSON,
		metadataJSON,
		nullableString(record.Error),
		formatTimestamp(record.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert history record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	record.ID = id
	return &record, nil
}

// Get returns the record with the given ID, or nil when absent.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM dump_history WHERE id = ?", id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get history record %d: %w", id, err)
	}
	return record, nil
}

// List returns records newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]*Record, error) {
	ctx = ensureContext(ctx)
	var (
		clauses []string
		args    []any
	)
	if filter.Engine != "" {
		clauses = append(clauses, "engine = ?")
		args = append(args, filter.Engine)
	}
	if filter.BasePath != "" {
		clauses = append(clauses, "base_path = ?")
		args = append(args, filter.BasePath)
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, formatTimestamp(filter.Since))
	}

	query := "SELECT " + recordColumns + " FROM dump_history"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Stats returns a count of records grouped by status.
func (s *Store) Stats(ctx context.Context) (map[Status]int, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM dump_history GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("history stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

// Prune removes records created before the cutoff and reports how many went.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.execWithRetry(ctx, "DELETE FROM dump_history WHERE created_at < ?", formatTimestamp(before))
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return res.RowsAffected()
}

// PruneRetention applies a retention window in days. Zero keeps everything.
func (s *Store) PruneRetention(ctx context.Context, days int, now time.Time) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	return s.Prune(ctx, now.AddDate(0, 0, -days))
}

// Clear removes every record.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, "DELETE FROM dump_history")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}
