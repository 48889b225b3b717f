package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RouteScorer interface {
	ScoreRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error)
}

type Handler struct {
	logger *slog.Logger
	Routes RouteScorer
}

func NewHandler(logger *slog.Logger, routes RouteScorer) *Handler {
	return &Handler{
		logger: logger,
		Routes: routes,
	}
}

func (h *Handler) SafeRoute(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RouteRequest

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
		l.Warn("route validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := h.Routes.ScoreRoute(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
