package domain

type Stats struct {
	RouteChecks int64 `json:"route_checks"`
	Reports     int64 `json:"reports"`
	Minutes     int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 день max
}
