package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
)

// Pinger описывает интерфейс проверки доступности базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler отвечает на запросы проверки состояния сервиса.
type Handler struct {
	log *slog.Logger
	db  Pinger
}

// New создает новый Handler с переданными логгером и проверкой базы.
func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	database := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("database ping failed", slog.String("op", op), sl.Err(err))
		database = "disconnected"
	}

	render.JSON(w, r, response.OK("server is running", map[string]any{
		"database": database,
	}))
}
