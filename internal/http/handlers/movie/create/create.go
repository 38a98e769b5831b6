// Package create реализует HTTP-обработчик добавления фильма в каталог.
//
// Handler принимает JSON с данными фильма, валидирует их,
// вызывает бизнес-логику создания через сервис каталога и возвращает
// созданную запись с присвоенным идентификатором.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики создания фильма.
type Service interface {
	Add(ctx context.Context, req models.CreateMovieRequest) (*models.Movie, error)
}

// Handler управляет HTTP-запросами на добавление фильмов.
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

// ServeHTTP godoc
// @Summary Добавить фильм
// @Description Создает новую запись фильма в каталоге. Возвращает созданный фильм с идентификатором.
// @Tags Movies
// @Accept  json
// @Produce  json
// @Param request body models.CreateMovieRequest true "Данные нового фильма"
// @Success 201 {object} map[string]any "Фильм создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании фильма"
// @Router /movies/new [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	// Верхняя граница года зависит от текущей даты, тег валидатора её не выразит.
	if req.Year > time.Now().Year() {
		log.Error("year is in the future", slog.Int("year", req.Year))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("year must be a valid number within realistic range"))
		return
	}
	log.Info("all fields are validated")

	movie, err := h.service.Add(r.Context(), req)
	if err != nil {
		log.Error("failed to add movie", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("adding movie failed"))
		return
	}

	log.Info("movie added", slog.String("id", movie.ID.Hex()))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OK("Movie added successfully", map[string]any{
		"movie": movie,
	}))
}
