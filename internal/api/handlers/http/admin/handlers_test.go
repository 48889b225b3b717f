package admin_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/jha9262/SafePath-AI/internal/api/handlers/http/admin"
	mock_admin "github.com/jha9262/SafePath-AI/internal/api/handlers/http/admin/mocks"
	"github.com/jha9262/SafePath-AI/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(t *testing.T) (*admin.Handler, *mock_admin.MockStatsGetter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mock_admin.NewMockStatsGetter(ctrl)
	return admin.NewHandler(newTestLogger(), svc), svc
}

func TestAdminStats_DefaultMinutes(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	svc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.Stats{RouteChecks: 10, Reports: 3, Minutes: 60}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rec := httptest.NewRecorder()

	h.AdminStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var got domain.Stats
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.RouteChecks != 10 || got.Reports != 3 || got.Minutes != 60 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestAdminStats_ExplicitMinutes(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	svc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 120}).
		Return(&domain.Stats{Minutes: 120}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=120", nil)
	rec := httptest.NewRecorder()

	h.AdminStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAdminStats_InvalidMinutes(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	for _, minutes := range []string{"0", "-5", "1441", "abc"} {
		minutes := minutes
		t.Run(minutes, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes="+minutes, nil)
			rec := httptest.NewRecorder()

			h.AdminStats(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAdminStats_ServiceError(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	svc.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rec := httptest.NewRecorder()

	h.AdminStats(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
