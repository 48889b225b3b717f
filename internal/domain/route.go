package domain

import (
	"time"

	"github.com/google/uuid"
)

type RouteRequest struct {
	SourceLat float64 `json:"sourceLat" validate:"lat"`
	SourceLng float64 `json:"sourceLng" validate:"lng"`
	DestLat   float64 `json:"destLat" validate:"lat"`
	DestLng   float64 `json:"destLng" validate:"lng"`
}

// ZoneSummary is the public projection of a zone inside a route result.
// No reporter reference: user identity must not leak into route responses.
type ZoneSummary struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Category      string  `json:"category"`
	SeverityScore int     `json:"severityScore"`
}

type RouteResult struct {
	SafetyScore       float64       `json:"safetyScore"` // clamped to [1.0, 10.0]
	RouteDescription  string        `json:"routeDescription"`
	DangerZones       []ZoneSummary `json:"dangerZones"`
	EstimatedDistance float64       `json:"estimatedDistance"` // great-circle km
}

// RouteCheck is the stats record written per route query. Deliberately has
// no user reference.
type RouteCheck struct {
	ID          uuid.UUID `json:"id"`
	SourceLat   float64   `json:"source_lat"`
	SourceLng   float64   `json:"source_lng"`
	DestLat     float64   `json:"dest_lat"`
	DestLng     float64   `json:"dest_lng"`
	SafetyScore float64   `json:"safety_score"`
	ZoneCount   int       `json:"zone_count"`
	CheckedAt   time.Time `json:"checked_at"`
}
