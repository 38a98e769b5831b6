// Package list реализует HTTP-обработчик постраничного просмотра каталога.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/pagination"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики просмотра каталога.
type Service interface {
	List(ctx context.Context, page, limit int) ([]models.Movie, pagination.Meta, error)
}

// Handler обрабатывает запросы на постраничный список фильмов.
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

// ServeHTTP godoc
// @Summary Список фильмов
// @Description Возвращает страницу каталога, отсортированную по убыванию года, с метаданными постраничного вывода.
// @Tags Movies
// @Produce  json
// @Param page query int false "Номер страницы, по умолчанию 1"
// @Param limit query int false "Размер страницы, по умолчанию 10, максимум 100"
// @Success 200 {object} map[string]any "Страница каталога"
// @Failure 400 {object} response.ErrorResponse "Страница за пределами результата"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /movies/allMovies [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, limit := pageWindow(r)

	movies, meta, err := h.service.List(r.Context(), page, limit)
	if errors.Is(err, pagination.ErrInvalidPage) {
		log.Error("page is out of range", slog.Int("page", page))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("page is out of range"))
		return
	}
	if err != nil {
		log.Error("failed to list movies", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error occurred while fetching movies"))
		return
	}

	msg := fmt.Sprintf("Found %d movies", meta.TotalMovies)
	if meta.TotalMovies == 0 {
		msg = "No movies found"
	}
	log.Info("movies listed", slog.Int("count", len(movies)))
	render.JSON(w, r, response.OK(msg, map[string]any{
		"movies":     movies,
		"pagination": meta,
	}))
}

// pageWindow извлекает параметры окна выборки из query-строки.
func pageWindow(r *http.Request) (page, limit int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = pagination.DefaultLimit
	}
	return page, limit
}
