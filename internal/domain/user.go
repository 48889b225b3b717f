package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	LastReportTime *time.Time `json:"last_report_time,omitempty"`
}
