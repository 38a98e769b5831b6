// Package models содержит доменные структуры каталога фильмов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie представляет собой основную модель фильма,
// используемую в бизнес-логике и хранилище.
type Movie struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`         // Название фильма
	Year     int                `bson:"year" json:"year"`           // Год выхода, 1900..текущий
	Category string             `bson:"category" json:"category"`   // Жанр
	Time     string             `bson:"time" json:"time"`           // Длительность, строка вида "155min"
	Director string             `bson:"director" json:"director"`   // Режиссёр
	MainCast []string           `bson:"main_cast" json:"main_cast"` // Основной актёрский состав
	Rating   float64            `bson:"rating" json:"rating"`       // Рейтинг 0..10
}

// CreateMovieRequest используется для приёма данных из JSON-запроса на создание фильма.
// Верхняя граница года зависит от текущей даты и проверяется отдельно от валидатора.
type CreateMovieRequest struct {
	Title    string   `json:"title" validate:"required"`
	Year     int      `json:"year" validate:"required,gte=1900"`
	Category string   `json:"category" validate:"required"`
	Time     string   `json:"time" validate:"required,min=2,max=15"`
	Director string   `json:"director" validate:"required"`
	MainCast []string `json:"main_cast" validate:"required,min=1,dive,required"`
	Rating   *float64 `json:"rating" validate:"required,gte=0,lte=10"`
}

// UpdateMovieRequest используется для частичного обновления фильма.
// Поля-указатели позволяют отличить отсутствующее поле от пустого значения:
// валидируются и применяются только переданные поля.
type UpdateMovieRequest struct {
	Title    *string   `json:"title" validate:"omitempty,min=1"`
	Year     *int      `json:"year" validate:"omitempty,gte=1900"`
	Category *string   `json:"category" validate:"omitempty,min=1"`
	Time     *string   `json:"time" validate:"omitempty,min=2,max=15"`
	Director *string   `json:"director" validate:"omitempty,min=1"`
	MainCast *[]string `json:"main_cast" validate:"omitempty,min=1,dive,required"`
	Rating   *float64  `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

// IsEmpty сообщает, что в запросе не передано ни одного поля.
func (r UpdateMovieRequest) IsEmpty() bool {
	return r.Title == nil && r.Year == nil && r.Category == nil &&
		r.Time == nil && r.Director == nil && r.MainCast == nil && r.Rating == nil
}

// ToMovie конвертирует валидированный запрос в доменную модель.
func (r CreateMovieRequest) ToMovie() Movie {
	return Movie{
		Title:    r.Title,
		Year:     r.Year,
		Category: r.Category,
		Time:     r.Time,
		Director: r.Director,
		MainCast: r.MainCast,
		Rating:   *r.Rating,
	}
}
