package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

var errRowFormat = errors.New("unexpected row format")

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// extractKey extracts the inner record key (without the table prefix) from
// a SurrealDB record id in any of the shapes the driver produces.
func extractKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		if _, key, ok := strings.Cut(v, ":"); ok {
			return strings.Trim(key, "⟨⟩`")
		}
		return v
	case models.RecordID:
		return fmt.Sprintf("%v", v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%v", v.ID)
		}
	case map[string]interface{}:
		// {"tb": "table", "id": "xxx"} format
		if key, ok := v["id"].(string); ok {
			return key
		}
	}
	return ""
}

// decodeRow maps a row onto target via a JSON round trip and returns the
// record key. The row's id field is excluded from the round trip; callers
// assign the returned key themselves.
func decodeRow(row interface{}, target interface{}) (string, error) {
	m, ok := row.(map[string]interface{})
	if !ok {
		return "", errRowFormat
	}

	key := extractKey(m["id"])

	fields := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k == "id" {
			continue
		}
		fields[k] = v
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encoding row: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return "", fmt.Errorf("decoding row: %w", err)
	}
	return key, nil
}

// contentFor converts a model struct into the map persisted as the record
// CONTENT. The id field is stripped; it lives in the record id instead.
func contentFor(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding content: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	delete(m, "id")
	return m, nil
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) *time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	case time.Time:
		return &v
	case models.CustomDateTime:
		t := v.Time
		return &t
	case *models.CustomDateTime:
		if v != nil {
			t := v.Time
			return &t
		}
	}
	return nil
}
