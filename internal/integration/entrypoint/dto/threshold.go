// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ThresholdsBody is the flat category → monthly limit map used by both
// GET and PUT /thresholds. A PUT replaces the stored map wholesale.
type ThresholdsBody map[string]float64

// ToThresholdsBody converts thresholds to plain numbers.
func ToThresholdsBody(thresholds entity.Thresholds) ThresholdsBody {
	body := make(ThresholdsBody, len(thresholds))
	for category, limit := range thresholds {
		body[category] = limit.InexactFloat64()
	}
	return body
}
