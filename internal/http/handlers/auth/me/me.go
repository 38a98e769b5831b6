package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/movie-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/movie-catalog/internal/http/response"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/repository"
)

// Service описывает интерфейс получения пользователя по email.
type Service interface {
	GetByEmail(ctx context.Context, email string) (*models.UserView, error)
}

// Handler возвращает пользователя, которому принадлежит текущий токен.
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
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := r.Context().Value(middlewarectx.UserEmail).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.service.GetByEmail(r.Context(), email)
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Error("user not found", slog.String("email", email))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to fetch user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not fetch user"))
		return
	}

	render.JSON(w, r, response.OK("user found", map[string]any{
		"user": user,
	}))
}
