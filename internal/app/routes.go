// Package app собирает приложение каталога фильмов: маршруты, middleware
// и жизненный цикл HTTP-сервера.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/health"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/create"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/list"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/read"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/remove"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/searchactor"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/searchcategory"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/searchtitle"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/searchyear"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/toprated"
	"github.com/magabrotheeeer/movie-catalog/internal/http/handlers/movie/update"
	"github.com/magabrotheeeer/movie-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/movie-catalog/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/movie-catalog/internal/services/catalog"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/mongodb"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, catalogService *catalogservice.CatalogService,
	authService *authservice.AuthService, jwtMaker jwt.Maker, db *mongodb.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/me", me.New(logger, authService).ServeHTTP)
		})
	})

	r.Route("/movies", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/new", create.New(logger, catalogService).ServeHTTP)
		r.Get("/allMovies", list.New(logger, catalogService).ServeHTTP)
		r.Get("/title", searchtitle.New(logger, catalogService).ServeHTTP)
		r.Get("/category", searchcategory.New(logger, catalogService).ServeHTTP)
		r.Get("/actor", searchactor.New(logger, catalogService).ServeHTTP)
		r.Get("/searchByYear", searchyear.New(logger, catalogService).ServeHTTP)
		r.Get("/searchByYearRange", searchyear.NewRange(logger, catalogService).ServeHTTP)
		r.Get("/topRated", toprated.New(logger, catalogService).ServeHTTP)
		r.Get("/{id}", read.New(logger, catalogService).ServeHTTP)
		r.Put("/{id}", update.New(logger, catalogService).ServeHTTP)
		r.Delete("/{id}", remove.New(logger, catalogService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
