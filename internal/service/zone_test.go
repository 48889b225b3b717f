package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/internal/geo"
	"github.com/jha9262/SafePath-AI/internal/service"
	mock_service "github.com/jha9262/SafePath-AI/internal/service/mocks"
	"github.com/jha9262/SafePath-AI/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func timePtr(t time.Time) *time.Time { return &t }

type zoneMocks struct {
	zones  *mock_service.MockZoneRepository
	users  *mock_service.MockUserRepository
	cache  *mock_service.MockZoneCacheService
	alerts *mock_service.MockAlertQueue
}

func newZoneService(t *testing.T) (service.ZoneService, zoneMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := zoneMocks{
		zones:  mock_service.NewMockZoneRepository(ctrl),
		users:  mock_service.NewMockUserRepository(ctrl),
		cache:  mock_service.NewMockZoneCacheService(ctrl),
		alerts: mock_service.NewMockAlertQueue(ctrl),
	}
	svc := service.NewZoneService(m.zones, m.users, m.cache, m.alerts, newTestLogger(), time.Minute)
	return svc, m
}

func TestSubmitReport_FirstReport_OK(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	userID := uuid.New()
	req := domain.ReportRequest{
		Lat:       40.0,
		Lng:       -75.0,
		Category:  domain.CategoryPothole,
		UserEmail: "alice@example.com",
	}

	m.users.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		Return(&domain.User{ID: userID, Email: "alice@example.com"}, nil).
		Times(1)

	var saved *domain.DangerZone
	m.zones.EXPECT().
		SaveReported(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, zone *domain.DangerZone, _ time.Time) error {
			saved = zone
			return nil
		}).
		Times(1)

	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	zone, err := svc.SubmitReport(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if saved == nil || zone != saved {
		t.Fatalf("returned zone is not the saved zone")
	}
	if zone.ID == uuid.Nil {
		t.Fatalf("zone.ID is nil")
	}
	if zone.SeverityScore != 1 {
		t.Fatalf("severity = %d, want default 1", zone.SeverityScore)
	}
	if zone.ReportedBy != userID {
		t.Fatalf("reportedBy = %v, want %v", zone.ReportedBy, userID)
	}
	if zone.Category != domain.CategoryPothole {
		t.Fatalf("category = %v", zone.Category)
	}
	if zone.CreatedAt.IsZero() {
		t.Fatalf("createdAt is zero")
	}
}

func TestSubmitReport_Within30s_RateLimited(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	last := time.Now().UTC().Add(-30 * time.Second)
	m.users.EXPECT().
		FindByEmail(gomock.Any(), "bob@example.com").
		Return(&domain.User{ID: uuid.New(), Email: "bob@example.com", LastReportTime: timePtr(last)}, nil).
		Times(1)

	// no SaveReported / Invalidate / Enqueue expected

	_, err := svc.SubmitReport(context.Background(), domain.ReportRequest{
		Lat: 1, Lng: 2, Category: domain.CategoryCrimeProne, UserEmail: "bob@example.com",
	})
	if !errors.Is(err, e.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestSubmitReport_After61s_OK(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	last := time.Now().UTC().Add(-61 * time.Second)
	m.users.EXPECT().
		FindByEmail(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: uuid.New(), LastReportTime: timePtr(last)}, nil).
		Times(1)
	m.zones.EXPECT().SaveReported(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), domain.ReportRequest{
		Lat: 1, Lng: 2, Category: domain.CategoryAccidentSpot, UserEmail: "carol@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSubmitReport_ExactlyAtCooldown_OK(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	// service computes now after this point, so last <= now-60s holds
	last := time.Now().UTC().Add(-time.Minute)
	m.users.EXPECT().
		FindByEmail(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: uuid.New(), LastReportTime: timePtr(last)}, nil).
		Times(1)
	m.zones.EXPECT().SaveReported(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), domain.ReportRequest{
		Lat: 1, Lng: 2, Category: domain.CategoryPothole, UserEmail: "dave@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSubmitReport_UserNotFound(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	m.users.EXPECT().
		FindByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, e.ErrUserNotFound).
		Times(1)

	_, err := svc.SubmitReport(context.Background(), domain.ReportRequest{
		Lat: 1, Lng: 2, Category: domain.CategoryPothole, UserEmail: "ghost@example.com",
	})
	if !errors.Is(err, e.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSubmitReport_StoreClaimLost_RateLimited(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	m.users.EXPECT().
		FindByEmail(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: uuid.New()}, nil).
		Times(1)

	// the concurrent-writer case: fast path passed but the conditional
	// UPDATE matched zero rows
	m.zones.EXPECT().
		SaveReported(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(e.ErrRateLimited).
		Times(1)

	_, err := svc.SubmitReport(context.Background(), domain.ReportRequest{
		Lat: 1, Lng: 2, Category: domain.CategoryPothole, UserEmail: "eve@example.com",
	})
	if !errors.Is(err, e.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestSubmitReport_SaveFails_NoAlert(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	m.users.EXPECT().
		FindByEmail(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: uuid.New()}, nil).
		Times(1)

	wantErr := errors.New("db down")
	m.zones.EXPECT().
		SaveReported(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(wantErr).
		Times(1)

	// no Invalidate / Enqueue expected after a failed save

	_, err := svc.SubmitReport(context.Background(), domain.ReportRequest{
		Lat: 1, Lng: 2, Category: domain.CategoryPothole, UserEmail: "frank@example.com",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestWithinRadius_InclusiveBoundary(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	zone := domain.CachedZone{
		ID:            uuid.New(),
		Lat:           40.05,
		Lng:           -75.05,
		Category:      domain.CategoryPoorlyLitRoad,
		SeverityScore: 1,
	}
	m.cache.EXPECT().GetActive(gomock.Any()).Return([]domain.CachedZone{zone}, nil).Times(1)

	centerLat, centerLng := 40.0, -75.0
	// radius exactly equals the zone's distance: the zone must be included
	radius := geo.DistanceKm(centerLat, centerLng, zone.Lat, zone.Lng)

	nearby, err := svc.WithinRadius(context.Background(), centerLat, centerLng, radius)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(nearby) != 1 {
		t.Fatalf("boundary zone excluded: got %d zones", len(nearby))
	}
	if nearby[0].DistanceKM != radius {
		t.Fatalf("distance %v != radius %v", nearby[0].DistanceKM, radius)
	}
}

func TestWithinRadius_SubsetPerRadius(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	zones := []domain.CachedZone{
		{ID: uuid.New(), Lat: 0.001, Lng: 0, Category: domain.CategoryPothole, SeverityScore: 1}, // ~0.11 km
		{ID: uuid.New(), Lat: 0.01, Lng: 0, Category: domain.CategoryPothole, SeverityScore: 1},  // ~1.1 km
		{ID: uuid.New(), Lat: 0.05, Lng: 0, Category: domain.CategoryPothole, SeverityScore: 1},  // ~5.6 km
	}
	m.cache.EXPECT().GetActive(gomock.Any()).Return(zones, nil).Times(2)

	small, err := svc.WithinRadius(context.Background(), 0, 0, 0.5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	large, err := svc.WithinRadius(context.Background(), 0, 0, 2.0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(small) != 1 || len(large) != 2 {
		t.Fatalf("counts: small=%d large=%d, want 1 and 2", len(small), len(large))
	}
	inLarge := make(map[uuid.UUID]bool, len(large))
	for _, z := range large {
		inLarge[z.ID] = true
	}
	for _, z := range small {
		if !inLarge[z.ID] {
			t.Fatalf("small result not a subset of large result: %v missing", z.ID)
		}
	}
}

func TestWithinRadius_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	svc, _ := newZoneService(t)

	if _, err := svc.WithinRadius(context.Background(), 91, 0, 2); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if _, err := svc.WithinRadius(context.Background(), 0, 181, 2); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if _, err := svc.WithinRadius(context.Background(), 0, 0, 0); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero radius, got %v", err)
	}
}

func TestWithinRadius_CacheMissFallsBackToStore(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	stored := []domain.DangerZone{
		{ID: uuid.New(), Lat: 0, Lng: 0, Category: domain.CategoryCrimeProne, ReportedBy: uuid.New(), SeverityScore: 1},
	}

	m.cache.EXPECT().GetActive(gomock.Any()).Return(nil, nil).Times(1)
	m.zones.EXPECT().ListAll(gomock.Any()).Return(stored, nil).Times(1)
	m.cache.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	nearby, err := svc.WithinRadius(context.Background(), 0, 0, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(nearby) != 1 {
		t.Fatalf("got %d zones, want 1", len(nearby))
	}
}

func TestWithinRadius_CacheErrorFallsBackToStore(t *testing.T) {
	t.Parallel()

	svc, m := newZoneService(t)

	m.cache.EXPECT().GetActive(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	m.zones.EXPECT().ListAll(gomock.Any()).Return([]domain.DangerZone{}, nil).Times(1)
	m.cache.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	nearby, err := svc.WithinRadius(context.Background(), 0, 0, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(nearby) != 0 {
		t.Fatalf("got %d zones, want 0", len(nearby))
	}
}
