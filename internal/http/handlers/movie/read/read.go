// Package read реализует HTTP-обработчик получения фильма по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения фильма.
type Service interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
}

// Handler обрабатывает запросы на получение фильма по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid movie id"))
		return
	}

	movie, err := h.service.Get(r.Context(), id)
	if errors.Is(err, repository.ErrMovieNotFound) {
		log.Error("movie not found", slog.String("id", id.Hex()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Movie not found"))
		return
	}
	if err != nil {
		log.Error("failed to read movie", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error occurred while fetching movies"))
		return
	}

	log.Info("movie found", slog.String("id", id.Hex()))
	render.JSON(w, r, response.OK("Movie found", map[string]any{
		"movie": movie,
	}))
}
