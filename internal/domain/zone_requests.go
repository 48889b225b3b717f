package domain

// ReportRequest is what a user submits to flag a danger zone. Coordinate
// range checks live in the validator tags; everything else (rate gate,
// severity default) belongs to the service.
type ReportRequest struct {
	Lat       float64        `json:"latitude" validate:"lat"`
	Lng       float64        `json:"longitude" validate:"lng"`
	Category  DangerCategory `json:"category" validate:"required,danger_category"`
	UserEmail string         `json:"user_email" validate:"required,email"`
}

type RadiusRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	RadiusKM float64 `json:"radius_km" validate:"required,min=0.1,max=100"`
}

type RadiusResponse struct {
	Zones []NearbyZone `json:"zones"`
}
