package domain

import (
	"time"

	"github.com/google/uuid"
)

type DangerCategory string

const (
	CategoryPothole       DangerCategory = "POTHOLE"
	CategoryAccidentSpot  DangerCategory = "ACCIDENT_SPOT"
	CategoryPoorlyLitRoad DangerCategory = "POORLY_LIT_ROAD"
	CategoryCrimeProne    DangerCategory = "CRIME_PRONE"
)

func (c DangerCategory) Valid() bool {
	switch c {
	case CategoryPothole, CategoryAccidentSpot, CategoryPoorlyLitRoad, CategoryCrimeProne:
		return true
	}
	return false
}

type DangerZone struct {
	ID            uuid.UUID      `json:"id"`
	Lat           float64        `json:"latitude" validate:"lat"`  // -90..90
	Lng           float64        `json:"longitude" validate:"lng"` // -180..180
	Category      DangerCategory `json:"category"`
	ReportedBy    uuid.UUID      `json:"-"` // never serialized, privacy
	CreatedAt     time.Time      `json:"created_at"`
	SeverityScore int            `json:"severity_score"` // >= 1, defaults to 1
}

// CachedZone is the shape kept in the active-zone cache. It deliberately
// omits the reporter so cached data can feed route results as-is.
type CachedZone struct {
	ID            uuid.UUID      `json:"id"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Category      DangerCategory `json:"category"`
	SeverityScore int            `json:"severity_score"`
}

type NearbyZone struct {
	ID            uuid.UUID      `json:"id"`
	Lat           float64        `json:"latitude"`
	Lng           float64        `json:"longitude"`
	Category      DangerCategory `json:"category"`
	SeverityScore int            `json:"severity_score"`
	DistanceKM    float64        `json:"distance_km"`
}
