// Package searchtitle реализует HTTP-обработчик поиска фильмов по названию.
//
// Поиск регистронезависимый, по подстроке; результат отсортирован по убыванию
// года и возвращается постранично.
package searchtitle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/pagination"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики поиска по названию.
type Service interface {
	SearchByTitle(ctx context.Context, title string, page, limit int) ([]models.Movie, pagination.Meta, error)
}

// Handler обрабатывает запросы поиска по названию.
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
	const op = "handlers.movie.searchtitle"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		log.Error("title query parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("provide the movie title"))
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = pagination.DefaultLimit
	}

	movies, meta, err := h.service.SearchByTitle(r.Context(), title, page, limit)
	if errors.Is(err, pagination.ErrInvalidPage) {
		log.Error("page is out of range", slog.Int("page", page))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("page is out of range"))
		return
	}
	if err != nil {
		log.Error("failed to search movies by title", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error occurred while searching for the movie"))
		return
	}

	log.Info("movies found", slog.Int("count", len(movies)))
	render.JSON(w, r, response.OK(
		fmt.Sprintf("Found %d movies matching %s", meta.TotalMovies, title),
		map[string]any{
			"matches":    movies,
			"pagination": meta,
		}))
}
