// Package toprated реализует HTTP-обработчик выборки фильмов с высоким рейтингом.
//
// В выборку попадают фильмы с рейтингом не ниже порога хранилища;
// сортировка — по убыванию года, при равенстве — по убыванию рейтинга.
package toprated

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

// Service описывает интерфейс бизнес-логики выборки topRated.
type Service interface {
	TopRated(ctx context.Context, page, limit int) ([]models.Movie, pagination.Meta, error)
}

// Handler обрабатывает запросы на список фильмов с высоким рейтингом.
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
	const op = "handlers.movie.toprated"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = pagination.DefaultLimit
	}

	movies, meta, err := h.service.TopRated(r.Context(), page, limit)
	if errors.Is(err, pagination.ErrInvalidPage) {
		log.Error("page is out of range", slog.Int("page", page))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("page is out of range"))
		return
	}
	if err != nil {
		log.Error("failed to fetch top rated movies", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error while fetching top rated movies"))
		return
	}

	log.Info("top rated movies fetched", slog.Int("count", len(movies)))
	render.JSON(w, r, response.OK(
		fmt.Sprintf("These are %d top rated movies", len(movies)),
		map[string]any{
			"topRated":   movies,
			"pagination": meta,
		}))
}
