package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/invierteya/funds/internal/http/respond"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Info describes the running build.
type Info struct {
	Name        string
	Version     string
	Environment string
}

type Handler struct {
	db   Pinger
	info Info
}

func NewHandler(db Pinger, info Info) *Handler {
	return &Handler{db: db, info: info}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/health", h.health)
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message":     "Welcome to " + h.info.Name + " - Investment Funds",
		"version":     h.info.Version,
		"environment": h.info.Environment,
	})
}

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.info.Environment,
		Database:    "up",
	}

	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)

		resp.Status, resp.Database = "unhealthy", "down"
		status = http.StatusServiceUnavailable
	}

	respond.JSON(w, status, resp)
}
