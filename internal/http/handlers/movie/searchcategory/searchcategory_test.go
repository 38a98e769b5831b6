package searchcategory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/movie-catalog/internal/lib/pagination"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SearchByCategory(ctx context.Context, category string, page, limit int) ([]models.Movie, pagination.Meta, error) {
	args := m.Called(ctx, category, page, limit)
	return args.Get(0).([]models.Movie), args.Get(1).(pagination.Meta), args.Error(2)
}

func metaFor(page, limit, total int) pagination.Meta {
	meta, _ := pagination.Calculate(page, limit, total)
	return meta
}

func TestSearchCategoryHandler(t *testing.T) {
	matches := []models.Movie{
		{ID: primitive.NewObjectID(), Title: "Dune", Year: 2021, Category: "Sci-Fi"},
	}

	tests := []struct {
		name        string
		url         string
		setupMock   func(service *MockService)
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "фильмы жанра найдены",
			url:  "/movies/category?category=Sci-Fi",
			setupMock: func(service *MockService) {
				service.On("SearchByCategory", mock.Anything, "Sci-Fi", 1, 10).
					Return(matches, metaFor(1, 10, 1), nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Found 1 Sci-Fi movies",
		},
		{
			name:        "жанр не передан",
			url:         "/movies/category",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "please provide a category",
		},
		{
			name:        "жанр задан числом",
			url:         "/movies/category?category=2021",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "category must be text, not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.setupMock(service)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			handler := New(logger, service)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantSuccess, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])

			service.AssertExpectations(t)
		})
	}
}
