package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/movie-catalog/internal/models"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/mongodb"
)

// setupTestStorage поднимает контейнер MongoDB и возвращает репозиторий
// с функцией очистки. Каждый тест получает собственную базу.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("27017/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithDeadline(3 * time.Minute),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	port, err := mongoContainer.MappedPort(ctx, "27017")
	require.NoError(t, err, "failed to get port")

	uri := fmt.Sprintf("mongodb://localhost:%s", port.Port())
	dbName := "testdb_" + uuid.NewString()[:8]

	var db *mongodb.Storage
	for range 10 {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		db, err = mongodb.New(connectCtx, uri, dbName)
		cancel()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to connect to mongo after retries")

	cleanup := func() {
		if db != nil {
			_ = db.Close(ctx)
		}
		if mongoContainer != nil {
			_ = mongoContainer.Terminate(ctx)
		}
	}
	return New(db), cleanup
}

func seedMovie(t *testing.T, storage *Storage, title string, year int, category string, cast []string, rating float64) *models.Movie {
	movie, err := storage.CreateMovie(context.Background(), models.Movie{
		Title:    title,
		Year:     year,
		Category: category,
		Time:     "120min",
		Director: "Test Director",
		MainCast: cast,
		Rating:   rating,
	})
	require.NoError(t, err)
	return movie
}

func TestMovies_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	created := seedMovie(t, storage, "Dune", 2021, "Sci-Fi",
		[]string{"Timothee Chalamet", "Zendaya"}, 8.1)
	require.False(t, created.ID.IsZero())

	t.Run("чтение по идентификатору", func(t *testing.T) {
		got, err := storage.GetMovie(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Title)
		assert.Equal(t, 2021, got.Year)
		assert.Equal(t, []string{"Timothee Chalamet", "Zendaya"}, got.MainCast)
	})

	t.Run("чтение несуществующего фильма", func(t *testing.T) {
		_, err := storage.GetMovie(ctx, primitive.NewObjectID())
		assert.True(t, errors.Is(err, ErrMovieNotFound))
	})

	t.Run("частичное обновление", func(t *testing.T) {
		updated, err := storage.UpdateMovie(ctx, created.ID, bson.M{"rating": 8.5})
		require.NoError(t, err)
		assert.Equal(t, 8.5, updated.Rating)
		// Остальные поля не тронуты.
		assert.Equal(t, "Dune", updated.Title)
		assert.Equal(t, 2021, updated.Year)
	})

	t.Run("обновление несуществующего фильма", func(t *testing.T) {
		_, err := storage.UpdateMovie(ctx, primitive.NewObjectID(), bson.M{"rating": 5.0})
		assert.True(t, errors.Is(err, ErrMovieNotFound))
	})

	t.Run("удаление возвращает документ", func(t *testing.T) {
		deleted, err := storage.DeleteMovie(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", deleted.Title)

		_, err = storage.GetMovie(ctx, created.ID)
		assert.True(t, errors.Is(err, ErrMovieNotFound))
	})

	t.Run("повторное удаление", func(t *testing.T) {
		_, err := storage.DeleteMovie(ctx, created.ID)
		assert.True(t, errors.Is(err, ErrMovieNotFound))
	})
}

func TestMovies_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	seedMovie(t, storage, "Dune", 2021, "Sci-Fi", []string{"Timothee Chalamet", "Zendaya"}, 8.1)
	seedMovie(t, storage, "Dune: Part Two", 2024, "Sci-Fi", []string{"Timothee Chalamet", "Zendaya"}, 8.8)
	seedMovie(t, storage, "Arrival", 2016, "Sci-Fi", []string{"Amy Adams"}, 7.9)
	seedMovie(t, storage, "The Room", 2003, "Drama", []string{"Tommy Wiseau"}, 3.9)

	t.Run("список отсортирован по убыванию года", func(t *testing.T) {
		movies, total, err := storage.ListMovies(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, movies, 4)
		assert.Equal(t, "Dune: Part Two", movies[0].Title)
		assert.Equal(t, "The Room", movies[3].Title)
	})

	t.Run("окно выборки", func(t *testing.T) {
		movies, total, err := storage.ListMovies(ctx, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, movies, 2)
		assert.Equal(t, "Arrival", movies[0].Title)
	})

	t.Run("поиск по названию без учета регистра", func(t *testing.T) {
		movies, total, err := storage.SearchMoviesByTitle(ctx, "dune", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, movies, 2)
	})

	t.Run("спецсимволы в запросе экранируются", func(t *testing.T) {
		_, total, err := storage.SearchMoviesByTitle(ctx, "du.e(", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("поиск по жанру", func(t *testing.T) {
		_, total, err := storage.SearchMoviesByCategory(ctx, "sci", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("поиск по актеру", func(t *testing.T) {
		movies, total, err := storage.SearchMoviesByActor(ctx, "zendaya", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, m := range movies {
			assert.Contains(t, m.MainCast, "Zendaya")
		}
	})

	t.Run("поиск по точному году", func(t *testing.T) {
		movies, total, err := storage.SearchMoviesByYear(ctx, 2021, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, movies, 1)
		assert.Equal(t, "Dune", movies[0].Title)
	})

	t.Run("поиск по диапазону лет", func(t *testing.T) {
		_, total, err := storage.SearchMoviesByYearRange(ctx, 2016, 2021, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("выборка topRated отсекает рейтинг ниже порога", func(t *testing.T) {
		movies, total, err := storage.TopRatedMovies(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		for _, m := range movies {
			assert.GreaterOrEqual(t, m.Rating, TopRatedThreshold)
		}
	})

	t.Run("нет совпадений", func(t *testing.T) {
		movies, total, err := storage.SearchMoviesByTitle(ctx, "nonexistent", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
	})
}

func TestUsers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	storage, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC()
	user := models.User{
		Email:        "user@example.com",
		PasswordHash: "$2a$12$examplehashexamplehashexamplehash",
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := storage.CreateUser(ctx, user)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	t.Run("поиск по email", func(t *testing.T) {
		got, err := storage.GetUserByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, models.RoleUser, got.Role)
	})

	t.Run("email отсутствует", func(t *testing.T) {
		_, err := storage.GetUserByEmail(ctx, "missing@example.com")
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})

	t.Run("уникальный индекс по email", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, user)
		assert.True(t, errors.Is(err, ErrEmailTaken))
	})
}
