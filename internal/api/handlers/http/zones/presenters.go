package zones

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jha9262/SafePath-AI/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrRateLimited):
		h.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": e.ErrRateLimited.Error()})
	case errors.Is(err, e.ErrUserNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidCoordinates), errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
