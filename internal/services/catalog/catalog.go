// Package catalog содержит бизнес-логику каталога фильмов: создание, чтение,
// частичное обновление, удаление и поисковые выборки с постраничным выводом.
package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/movie-catalog/internal/lib/pagination"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

// MovieRepository описывает контракт хранилища фильмов.
// Поисковые методы возвращают страницу результата и общее число совпадений.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (*models.Movie, error)
	GetMovie(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	ListMovies(ctx context.Context, limit, skip int) ([]models.Movie, int, error)
	UpdateMovie(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	SearchMoviesByTitle(ctx context.Context, title string, limit, skip int) ([]models.Movie, int, error)
	SearchMoviesByCategory(ctx context.Context, category string, limit, skip int) ([]models.Movie, int, error)
	SearchMoviesByActor(ctx context.Context, actor string, limit, skip int) ([]models.Movie, int, error)
	SearchMoviesByYear(ctx context.Context, year, limit, skip int) ([]models.Movie, int, error)
	SearchMoviesByYearRange(ctx context.Context, from, to, limit, skip int) ([]models.Movie, int, error)
	TopRatedMovies(ctx context.Context, limit, skip int) ([]models.Movie, int, error)
}

// CatalogService реализует операции каталога поверх репозитория фильмов.
type CatalogService struct {
	movies MovieRepository
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(movies MovieRepository) *CatalogService {
	return &CatalogService{movies: movies}
}

// Add сохраняет валидированный фильм в каталоге.
func (s *CatalogService) Add(ctx context.Context, req models.CreateMovieRequest) (*models.Movie, error) {
	return s.movies.CreateMovie(ctx, req.ToMovie())
}

// Get возвращает фильм по идентификатору.
func (s *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	return s.movies.GetMovie(ctx, id)
}

// List возвращает страницу каталога с метаданными постраничного вывода.
func (s *CatalogService) List(ctx context.Context, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, s.movies.ListMovies)
}

// Update применяет частичное обновление: в патч попадают только переданные поля.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateMovieRequest) (*models.Movie, error) {
	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Year != nil {
		patch["year"] = *req.Year
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.Time != nil {
		patch["time"] = *req.Time
	}
	if req.Director != nil {
		patch["director"] = *req.Director
	}
	if req.MainCast != nil {
		patch["main_cast"] = *req.MainCast
	}
	if req.Rating != nil {
		patch["rating"] = *req.Rating
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("services.catalog.Update: empty patch")
	}
	return s.movies.UpdateMovie(ctx, id, patch)
}

// Remove удаляет фильм и возвращает удалённый документ.
func (s *CatalogService) Remove(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	return s.movies.DeleteMovie(ctx, id)
}

// SearchByTitle ищет фильмы по подстроке названия.
func (s *CatalogService) SearchByTitle(ctx context.Context, title string, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, func(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
		return s.movies.SearchMoviesByTitle(ctx, title, limit, skip)
	})
}

// SearchByCategory ищет фильмы по подстроке жанра.
func (s *CatalogService) SearchByCategory(ctx context.Context, category string, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, func(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
		return s.movies.SearchMoviesByCategory(ctx, category, limit, skip)
	})
}

// SearchByActor ищет фильмы по подстроке имени актёра в main_cast.
func (s *CatalogService) SearchByActor(ctx context.Context, actor string, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, func(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
		return s.movies.SearchMoviesByActor(ctx, actor, limit, skip)
	})
}

// SearchByYear возвращает фильмы указанного года.
func (s *CatalogService) SearchByYear(ctx context.Context, year, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, func(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
		return s.movies.SearchMoviesByYear(ctx, year, limit, skip)
	})
}

// SearchByYearRange возвращает фильмы с годом выхода в диапазоне [from, to].
func (s *CatalogService) SearchByYearRange(ctx context.Context, from, to, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, func(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
		return s.movies.SearchMoviesByYearRange(ctx, from, to, limit, skip)
	})
}

// TopRated возвращает фильмы с высоким рейтингом.
func (s *CatalogService) TopRated(ctx context.Context, page, limit int) ([]models.Movie, pagination.Meta, error) {
	return s.paged(ctx, page, limit, s.movies.TopRatedMovies)
}

// paged выполняет выборку с нормализацией окна и построением метаданных.
// Метаданные строятся по фактическому количеству совпадений, поэтому запрос
// страницы за пределами результата возвращает pagination.ErrInvalidPage.
func (s *CatalogService) paged(ctx context.Context, page, limit int,
	fetch func(ctx context.Context, limit, skip int) ([]models.Movie, int, error),
) ([]models.Movie, pagination.Meta, error) {
	page, limit = pagination.Normalize(page, limit)
	movies, total, err := fetch(ctx, limit, pagination.Skip(page, limit))
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	meta, err := pagination.Calculate(page, limit, total)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return movies, meta, nil
}
