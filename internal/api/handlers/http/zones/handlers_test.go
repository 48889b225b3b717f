package zones_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/jha9262/SafePath-AI/internal/api/handlers/http/zones"
	mock_zones "github.com/jha9262/SafePath-AI/internal/api/handlers/http/zones/mocks"
	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func newHandler(t *testing.T) (*zones.Handler, *mock_zones.MockZoneService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mock_zones.NewMockZoneService(ctrl)
	return zones.NewHandler(newTestLogger(), svc), svc
}

func TestReportDangerZone_Created(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	zone := &domain.DangerZone{
		ID:            uuid.New(),
		Lat:           40.0,
		Lng:           -75.0,
		Category:      domain.CategoryPothole,
		ReportedBy:    uuid.New(),
		CreatedAt:     time.Now().UTC(),
		SeverityScore: 1,
	}
	svc.EXPECT().
		SubmitReport(gomock.Any(), domain.ReportRequest{
			Lat:       40.0,
			Lng:       -75.0,
			Category:  domain.CategoryPothole,
			UserEmail: "alice@example.com",
		}).
		Return(zone, nil).
		Times(1)

	body := `{"latitude": 40.0, "longitude": -75.0, "category": "POTHOLE", "user_email": "alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/danger-zones/report", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ReportDangerZone(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	got := decodeJSON[domain.DangerZone](t, rec.Body)
	if got.ID != zone.ID || got.Category != zone.Category || got.SeverityScore != 1 {
		t.Fatalf("response zone = %+v", got)
	}
	if strings.Contains(rec.Body.String(), zone.ReportedBy.String()) {
		t.Fatalf("response leaks reporter id: %s", rec.Body.String())
	}
}

func TestReportDangerZone_InvalidJSON(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"truncated", `{"latitude": 40.0`},
		{"unknown field", `{"latitude": 1, "longitude": 2, "category": "POTHOLE", "user_email": "a@b.c", "extra": true}`},
		{"trailing data", `{"latitude": 1, "longitude": 2, "category": "POTHOLE", "user_email": "a@b.c"}{}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/danger-zones/report", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.ReportDangerZone(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestReportDangerZone_ValidationFailed(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"lat out of range", `{"latitude": 95.0, "longitude": 0, "category": "POTHOLE", "user_email": "a@b.c"}`},
		{"lng out of range", `{"latitude": 0, "longitude": 181.0, "category": "POTHOLE", "user_email": "a@b.c"}`},
		{"unknown category", `{"latitude": 0, "longitude": 0, "category": "DRAGONS", "user_email": "a@b.c"}`},
		{"missing email", `{"latitude": 0, "longitude": 0, "category": "POTHOLE"}`},
		{"bad email", `{"latitude": 0, "longitude": 0, "category": "POTHOLE", "user_email": "not-an-email"}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/danger-zones/report", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.ReportDangerZone(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestReportDangerZone_RateLimited(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	svc.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrRateLimited).
		Times(1)

	body := `{"latitude": 1, "longitude": 2, "category": "ACCIDENT_SPOT", "user_email": "bob@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/danger-zones/report", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ReportDangerZone(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	resp := decodeJSON[map[string]string](t, rec.Body)
	if resp["error"] == "" {
		t.Fatalf("missing error message in %v", resp)
	}
}

func TestReportDangerZone_UserNotFound(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	svc.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrUserNotFound).
		Times(1)

	body := `{"latitude": 1, "longitude": 2, "category": "POTHOLE", "user_email": "ghost@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/danger-zones/report", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ReportDangerZone(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestZonesWithinRadius_OK(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	nearby := []domain.NearbyZone{
		{ID: uuid.New(), Lat: 40.01, Lng: -75.01, Category: domain.CategoryCrimeProne, SeverityScore: 1, DistanceKM: 1.4},
	}
	svc.EXPECT().
		WithinRadius(gomock.Any(), 40.0, -75.0, 2.0).
		Return(nearby, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/danger-zones/radius?lat=40.0&lng=-75.0&radius=2.0", nil)
	rec := httptest.NewRecorder()

	h.ZonesWithinRadius(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	resp := decodeJSON[domain.RadiusResponse](t, rec.Body)
	if len(resp.Zones) != 1 || resp.Zones[0].ID != nearby[0].ID {
		t.Fatalf("response = %+v", resp)
	}
}

func TestZonesWithinRadius_BadQuery(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	cases := []struct {
		name  string
		query string
	}{
		{"missing all", ""},
		{"missing radius", "lat=1&lng=2"},
		{"non-numeric", "lat=abc&lng=2&radius=1"},
		{"lat out of range", "lat=95&lng=2&radius=1"},
		{"negative radius", "lat=1&lng=2&radius=-1"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/danger-zones/radius?"+tc.query, nil)
			rec := httptest.NewRecorder()

			h.ZonesWithinRadius(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestZonesWithinRadius_ServiceError(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	svc.EXPECT().
		WithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, e.ErrInternal).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/danger-zones/radius?lat=1&lng=2&radius=1", nil)
	rec := httptest.NewRecorder()

	h.ZonesWithinRadius(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
