// Package update реализует HTTP-обработчик частичного обновления фильма.
//
// Валидируются и применяются только поля, присутствующие в запросе;
// остальные остаются без изменений. Запись сохраняется только после того,
// как все переданные поля прошли проверку.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики обновления фильма.
type Service interface {
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateMovieRequest) (*models.Movie, error)
}

// Handler обрабатывает запросы на частичное обновление фильма.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.update"

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

	var req models.UpdateMovieRequest
	if err = render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if req.IsEmpty() {
		log.Error("empty update request")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no fields to update"))
		return
	}

	if err = h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	if req.Year != nil && *req.Year > time.Now().Year() {
		log.Error("year is in the future", slog.Int("year", *req.Year))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("year must be a valid number within realistic range"))
		return
	}
	log.Info("all supplied fields are validated")

	movie, err := h.service.Update(r.Context(), id, req)
	if errors.Is(err, repository.ErrMovieNotFound) {
		log.Error("movie not found", slog.String("id", id.Hex()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Movie not found"))
		return
	}
	if err != nil {
		log.Error("failed to update movie", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update movie"))
		return
	}

	log.Info("movie updated", slog.String("id", id.Hex()))
	render.JSON(w, r, response.OK("Movie updated successfully", map[string]any{
		"movie": movie,
	}))
}
