package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

const recordColumns = "id, session_id, engine, system, media, base_path, operation, status, missing_json, metadata_json, error_message, created_at"

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id           int64
		sessionID    string
		engine       string
		system       sql.NullString
		media        sql.NullString
		basePath     string
		operation    string
		status       string
		missingJSON  sql.NullString
		metadataJSON sql.NullString
		errorMessage sql.NullString
		createdRaw   string
	)
	if err := scanner.Scan(
		&id,
		&sessionID,
		&engine,
		&system,
		&media,
		&basePath,
		&operation,
		&status,
		&missingJSON,
		&metadataJSON,
		&errorMessage,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	record := &Record{
		ID:        id,
		SessionID: sessionID,
		Engine:    engine,
		System:    system.String,
		Media:     media.String,
		BasePath:  basePath,
		Operation: Operation(operation),
		Status:    Status(status),
		Error:     errorMessage.String,
	}
	if missingJSON.Valid && missingJSON.String != "" {
		if err := json.Unmarshal([]byte(missingJSON.String), &record.Missing); err != nil {
			return nil, err
		}
	}
	if metadataJSON.Valid && metadataJSON.String != "" {
		record.Metadata = json.RawMessage(metadataJSON.String)
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		record.CreatedAt = created
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
