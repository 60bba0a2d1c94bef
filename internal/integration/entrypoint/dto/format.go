// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ParseOptionalUUID parses an optional id, treating the empty string as absent.
func ParseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func optionalUUID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func optionalAmount(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	s := formatAmount(*amount)
	return &s
}
