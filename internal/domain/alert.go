package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportAlert is pushed to the alert queue for every accepted report and
// delivered to the configured webhook by the background sender.
type ReportAlert struct {
	ZoneID     uuid.UUID      `json:"zone_id"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
	Category   DangerCategory `json:"category"`
	ReportedAt time.Time      `json:"reported_at"`
}
