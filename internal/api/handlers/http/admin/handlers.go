package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error)
}

type Handler struct {
	logger *slog.Logger
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Stats:  stats,
	}
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		l.Error("Stats.GetStats failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}
