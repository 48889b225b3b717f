package zones

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneService interface {
	SubmitReport(ctx context.Context, req domain.ReportRequest) (*domain.DangerZone, error)
	WithinRadius(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyZone, error)
}

type Handler struct {
	logger *slog.Logger
	Zones  ZoneService
}

func NewHandler(logger *slog.Logger, zones ZoneService) *Handler {
	return &Handler{
		logger: logger,
		Zones:  zones,
	}
}

func (h *Handler) ReportDangerZone(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ReportRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("report validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.Zones.SubmitReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("danger zone reported", slog.String("id", zone.ID.String()))
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) ZonesWithinRadius(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	radius, radErr := strconv.ParseFloat(q.Get("radius"), 64)
	if latErr != nil || lngErr != nil || radErr != nil {
		l.Warn("invalid radius query", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat, lng and radius are required floats"})
		return
	}

	req := domain.RadiusRequest{Lat: lat, Lng: lng, RadiusKM: radius}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	nearby, err := h.Zones.WithinRadius(r.Context(), lat, lng, radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.RadiusResponse{Zones: nearby})
}
