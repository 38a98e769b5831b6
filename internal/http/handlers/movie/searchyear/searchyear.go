// Package searchyear реализует HTTP-обработчики поиска фильмов по году выхода:
// точное совпадение и диапазон [from, to].
package searchyear

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/pagination"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики поиска по году.
type Service interface {
	SearchByYear(ctx context.Context, year, page, limit int) ([]models.Movie, pagination.Meta, error)
	SearchByYearRange(ctx context.Context, from, to, page, limit int) ([]models.Movie, pagination.Meta, error)
}

// Handler обрабатывает запросы поиска по точному году.
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
	const op = "handlers.movie.searchyear"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1900 || year > time.Now().Year() {
		log.Error("invalid year query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("year must be a valid number within realistic range"))
		return
	}

	page, limit := pageWindow(r)

	movies, meta, err := h.service.SearchByYear(r.Context(), year, page, limit)
	if errors.Is(err, pagination.ErrInvalidPage) {
		log.Error("page is out of range", slog.Int("page", page))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("page is out of range"))
		return
	}
	if err != nil {
		log.Error("failed to search movies by year", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error searching by year"))
		return
	}

	log.Info("movies found", slog.Int("count", len(movies)))
	render.JSON(w, r, response.OK(
		fmt.Sprintf("Found %d movies released in %d", meta.TotalMovies, year),
		map[string]any{
			"matches":    movies,
			"pagination": meta,
		}))
}

// RangeHandler обрабатывает запросы поиска по диапазону лет.
type RangeHandler struct {
	log     *slog.Logger
	service Service
}

// NewRange создает новый RangeHandler с переданными логгером и сервисом.
func NewRange(log *slog.Logger, service Service) *RangeHandler {
	return &RangeHandler{
		log:     log,
		service: service,
	}
}

func (h *RangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.movie.searchyearrange"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	from, errFrom := strconv.Atoi(r.URL.Query().Get("from"))
	to, errTo := strconv.Atoi(r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil || from < 1900 || to > time.Now().Year() || from > to {
		log.Error("invalid year range query parameters")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid year range"))
		return
	}

	page, limit := pageWindow(r)

	movies, meta, err := h.service.SearchByYearRange(r.Context(), from, to, page, limit)
	if errors.Is(err, pagination.ErrInvalidPage) {
		log.Error("page is out of range", slog.Int("page", page))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("page is out of range"))
		return
	}
	if err != nil {
		log.Error("failed to search movies by year range", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error searching by year range"))
		return
	}

	log.Info("movies found", slog.Int("count", len(movies)))
	render.JSON(w, r, response.OK(
		fmt.Sprintf("Found %d movies released between %d and %d", meta.TotalMovies, from, to),
		map[string]any{
			"matches":    movies,
			"pagination": meta,
		}))
}

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
