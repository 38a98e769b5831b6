package remove

import (
	"context"
	"errors"
	"fmt"
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

// Service описывает интерфейс бизнес-логики удаления фильма.
type Service interface {
	Remove(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
}

// Handler обрабатывает запросы на удаление фильма.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.remove"

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

	movie, err := h.service.Remove(r.Context(), id)
	if errors.Is(err, repository.ErrMovieNotFound) {
		log.Error("movie not found", slog.String("id", id.Hex()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Movie not found"))
		return
	}
	if err != nil {
		log.Error("failed to delete movie", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error occurred while deleting movies"))
		return
	}

	log.Info("movie deleted", slog.String("id", id.Hex()), slog.String("title", movie.Title))
	render.JSON(w, r, response.OK(
		fmt.Sprintf("The movie (%s) was deleted successfully", movie.Title), nil))
}
