package searchyear

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func (m *MockService) SearchByYear(ctx context.Context, year, page, limit int) ([]models.Movie, pagination.Meta, error) {
	args := m.Called(ctx, year, page, limit)
	return args.Get(0).([]models.Movie), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockService) SearchByYearRange(ctx context.Context, from, to, page, limit int) ([]models.Movie, pagination.Meta, error) {
	args := m.Called(ctx, from, to, page, limit)
	return args.Get(0).([]models.Movie), args.Get(1).(pagination.Meta), args.Error(2)
}

func metaFor(page, limit, total int) pagination.Meta {
	meta, _ := pagination.Calculate(page, limit, total)
	return meta
}

func TestSearchYearHandler(t *testing.T) {
	matches := []models.Movie{
		{ID: primitive.NewObjectID(), Title: "Dune", Year: 2021},
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
			name: "фильмы найдены",
			url:  "/movies/searchByYear?year=2021",
			setupMock: func(service *MockService) {
				service.On("SearchByYear", mock.Anything, 2021, 1, 10).
					Return(matches, metaFor(1, 10, 1), nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Found 1 movies released in 2021",
		},
		{
			name:        "год не передан",
			url:         "/movies/searchByYear",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "year must be a valid number within realistic range",
		},
		{
			name:        "год не число",
			url:         "/movies/searchByYear?year=abc",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "year must be a valid number within realistic range",
		},
		{
			name:        "год до 1900",
			url:         "/movies/searchByYear?year=1800",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "year must be a valid number within realistic range",
		},
		{
			name:        "год в будущем",
			url:         fmt.Sprintf("/movies/searchByYear?year=%d", time.Now().Year()+1),
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "year must be a valid number within realistic range",
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

func TestSearchYearRangeHandler(t *testing.T) {
	matches := []models.Movie{
		{ID: primitive.NewObjectID(), Title: "Arrival", Year: 2016},
		{ID: primitive.NewObjectID(), Title: "Dune", Year: 2021},
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
			name: "диапазон задан корректно",
			url:  "/movies/searchByYearRange?from=2015&to=2021",
			setupMock: func(service *MockService) {
				service.On("SearchByYearRange", mock.Anything, 2015, 2021, 1, 10).
					Return(matches, metaFor(1, 10, 2), nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Found 2 movies released between 2015 and 2021",
		},
		{
			name:        "границы не переданы",
			url:         "/movies/searchByYearRange",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid year range",
		},
		{
			name:        "нижняя граница больше верхней",
			url:         "/movies/searchByYearRange?from=2021&to=2015",
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid year range",
		},
		{
			name:        "верхняя граница в будущем",
			url:         fmt.Sprintf("/movies/searchByYearRange?from=2015&to=%d", time.Now().Year()+1),
			setupMock:   func(_ *MockService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid year range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.setupMock(service)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			handler := NewRange(logger, service)

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
