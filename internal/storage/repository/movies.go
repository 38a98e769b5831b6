package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

// TopRatedThreshold — минимальный рейтинг фильма для выборки topRated.
const TopRatedThreshold = 7.0

// sortByYear — сортировка выборок по умолчанию: новые фильмы первыми.
var sortByYear = bson.D{{Key: "year", Value: -1}}

// sortByYearAndRating используется для topRated: при равном годе выше фильм
// с большим рейтингом.
var sortByYearAndRating = bson.D{{Key: "year", Value: -1}, {Key: "rating", Value: -1}}

// CreateMovie сохраняет новый фильм и возвращает его с заполненным идентификатором.
func (s *Storage) CreateMovie(ctx context.Context, movie models.Movie) (*models.Movie, error) {
	const op = "storage.CreateMovie"

	res, err := s.movies.InsertOne(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	movie.ID = oid
	return &movie, nil
}

// GetMovie возвращает фильм по идентификатору или ErrMovieNotFound.
func (s *Storage) GetMovie(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	const op = "storage.GetMovie"

	var movie models.Movie
	err := s.movies.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &movie, nil
}

// ListMovies возвращает страницу каталога, отсортированную по убыванию года,
// и общее количество фильмов.
func (s *Storage) ListMovies(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
	return s.findPage(ctx, "storage.ListMovies", bson.M{}, sortByYear, limit, skip)
}

// UpdateMovie атомарно применяет частичное обновление и возвращает
// обновлённый документ или ErrMovieNotFound.
func (s *Storage) UpdateMovie(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Movie, error) {
	const op = "storage.UpdateMovie"

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var movie models.Movie
	err := s.movies.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &movie, nil
}

// DeleteMovie удаляет фильм и возвращает удалённый документ
// или ErrMovieNotFound.
func (s *Storage) DeleteMovie(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	const op = "storage.DeleteMovie"

	var movie models.Movie
	err := s.movies.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &movie, nil
}

// SearchMoviesByTitle ищет фильмы по подстроке названия без учёта регистра.
func (s *Storage) SearchMoviesByTitle(ctx context.Context, title string, limit, skip int) ([]models.Movie, int, error) {
	filter := bson.M{"title": containsPattern(title)}
	return s.findPage(ctx, "storage.SearchMoviesByTitle", filter, sortByYear, limit, skip)
}

// SearchMoviesByCategory ищет фильмы по подстроке жанра без учёта регистра.
func (s *Storage) SearchMoviesByCategory(ctx context.Context, category string, limit, skip int) ([]models.Movie, int, error) {
	filter := bson.M{"category": containsPattern(category)}
	return s.findPage(ctx, "storage.SearchMoviesByCategory", filter, sortByYear, limit, skip)
}

// SearchMoviesByActor ищет фильмы, в main_cast которых есть элемент,
// содержащий подстроку actor без учёта регистра.
func (s *Storage) SearchMoviesByActor(ctx context.Context, actor string, limit, skip int) ([]models.Movie, int, error) {
	filter := bson.M{"main_cast": bson.M{"$elemMatch": bson.M{
		"$regex":   regexp.QuoteMeta(actor),
		"$options": "i",
	}}}
	return s.findPage(ctx, "storage.SearchMoviesByActor", filter, sortByYear, limit, skip)
}

// SearchMoviesByYear возвращает фильмы указанного года.
func (s *Storage) SearchMoviesByYear(ctx context.Context, year, limit, skip int) ([]models.Movie, int, error) {
	filter := bson.M{"year": year}
	return s.findPage(ctx, "storage.SearchMoviesByYear", filter, sortByYearAndRating, limit, skip)
}

// SearchMoviesByYearRange возвращает фильмы с годом выхода в диапазоне [from, to].
func (s *Storage) SearchMoviesByYearRange(ctx context.Context, from, to, limit, skip int) ([]models.Movie, int, error) {
	filter := bson.M{"year": bson.M{"$gte": from, "$lte": to}}
	return s.findPage(ctx, "storage.SearchMoviesByYearRange", filter, sortByYear, limit, skip)
}

// TopRatedMovies возвращает фильмы с рейтингом не ниже TopRatedThreshold,
// отсортированные по году, затем по рейтингу.
func (s *Storage) TopRatedMovies(ctx context.Context, limit, skip int) ([]models.Movie, int, error) {
	filter := bson.M{"rating": bson.M{"$gte": TopRatedThreshold}}
	return s.findPage(ctx, "storage.TopRatedMovies", filter, sortByYearAndRating, limit, skip)
}

// findPage выполняет счёт и постраничную выборку по одному фильтру.
func (s *Storage) findPage(ctx context.Context, op string, filter bson.M, sort bson.D, limit, skip int) ([]models.Movie, int, error) {
	total, err := s.movies.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := s.movies.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	movies := make([]models.Movie, 0)
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return movies, int(total), nil
}

// containsPattern строит регистронезависимый фильтр подстроки,
// экранируя спецсимволы регулярных выражений в пользовательском вводе.
func containsPattern(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}
