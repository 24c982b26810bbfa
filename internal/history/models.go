package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the outcome recorded for a run.
type Status string

const (
	// StatusVerified means every required output was present.
	StatusVerified Status = "verified"
	// StatusReview means the run needs a human to look at it: missing
	// outputs, bad configuration, or unsupported input.
	StatusReview Status = "review"
	// StatusFailed means the run hit an unexpected error.
	StatusFailed Status = "failed"
)

// ParseStatus resolves a status name, ignoring case.
func ParseStatus(value string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(value))); s {
	case StatusVerified, StatusReview, StatusFailed:
		return s, nil
	default:
		return "", fmt.Errorf("unknown history status %q", value)
	}
}

// Operation names the command that produced a record.
type Operation string

const (
	OperationVerify  Operation = "verify"
	OperationExtract Operation = "extract"
	OperationArchive Operation = "archive"
)

// Record is one row of dump history.
type Record struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	Engine    string          `json:"engine"`
	System    string          `json:"system,omitempty"`
	Media     string          `json:"media,omitempty"`
	BasePath  string          `json:"base_path"`
	Operation Operation       `json:"operation"`
	Status    Status          `json:"status"`
	Missing   []string        `json:"missing,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MarshalYAML renders the record with the same keys as its JSON form and
// metadata decoded into a mapping instead of raw bytes.
func (r Record) MarshalYAML() (any, error) {
	var metadata any
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("decode record metadata: %w", err)
		}
	}
	return struct {
		ID        int64     `yaml:"id"`
		SessionID string    `yaml:"session_id"`
		Engine    string    `yaml:"engine"`
		System    string    `yaml:"system,omitempty"`
		Media     string    `yaml:"media,omitempty"`
		BasePath  string    `yaml:"base_path"`
		Operation Operation `yaml:"operation"`
		Status    Status    `yaml:"status"`
		Missing   []string  `yaml:"missing,omitempty"`
		Metadata  any       `yaml:"metadata,omitempty"`
		Error     string    `yaml:"error,omitempty"`
		CreatedAt time.Time `yaml:"created_at"`
	}{r.ID, r.SessionID, r.Engine, r.System, r.Media, r.BasePath, r.Operation, r.Status, r.Missing, metadata, r.Error, r.CreatedAt}, nil
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Engine   string
	BasePath string
	Status   Status
	Since    time.Time
	Limit    int
}
