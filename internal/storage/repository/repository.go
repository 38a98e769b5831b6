// Package repository реализует хранилище данных на основе MongoDB
// для каталога фильмов и учётных записей пользователей. Предоставляет методы
// создания, чтения, обновления, удаления и поиска записей с постраничной выборкой.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/movie-catalog/internal/storage/mongodb"
)

// Ошибки хранилища. Обработчики сопоставляют их с HTTP-статусами.
var (
	// ErrMovieNotFound — фильм с данным идентификатором отсутствует.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrUserNotFound — пользователь с данным email отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — нарушен уникальный индекс по email.
	ErrEmailTaken = errors.New("email already taken")
)

// Storage инкапсулирует коллекции MongoDB и реализует методы
// работы с фильмами и пользователями.
type Storage struct {
	movies *mongo.Collection
	users  *mongo.Collection
}

// New создаёт репозиторий поверх подключения к MongoDB.
func New(db *mongodb.Storage) *Storage {
	return &Storage{
		movies: db.Movies,
		users:  db.Users,
	}
}
