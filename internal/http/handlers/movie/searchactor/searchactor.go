// Package searchactor реализует HTTP-обработчик поиска фильмов по актёру.
//
// Совпадение ищется внутри элементов main_cast без учёта регистра.
package searchactor

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

// Service описывает интерфейс бизнес-логики поиска по актёру.
type Service interface {
	SearchByActor(ctx context.Context, actor string, page, limit int) ([]models.Movie, pagination.Meta, error)
}

// Handler обрабатывает запросы поиска по актёру.
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
	const op = "handlers.movie.searchactor"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := strings.TrimSpace(r.URL.Query().Get("actor"))
	if actor == "" {
		log.Error("actor query parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("actor name must be valid"))
		return
	}
	if _, err := strconv.Atoi(actor); err == nil {
		log.Error("actor is numeric", slog.String("actor", actor))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("actor name must be valid"))
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

	movies, meta, err := h.service.SearchByActor(r.Context(), actor, page, limit)
	if errors.Is(err, pagination.ErrInvalidPage) {
		log.Error("page is out of range", slog.Int("page", page))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("page is out of range"))
		return
	}
	if err != nil {
		log.Error("failed to search movies by actor", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error searching by actor"))
		return
	}

	log.Info("movies found", slog.Int("count", len(movies)))
	render.JSON(w, r, response.OK(
		fmt.Sprintf("Found %d movies for %s", meta.TotalMovies, actor),
		map[string]any{
			"matches":    movies,
			"pagination": meta,
		}))
}
