// Package mongodb реализует подключение к MongoDB: создание клиента,
// проверку доступности базы и подготовку коллекций с индексами.
//
// Уникальный индекс по users.email — авторитетная защита от дублей:
// проверка существования в бизнес-логике носит только информационный характер.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Имена коллекций каталога.
const (
	MoviesCollection = "movies"
	UsersCollection  = "users"
)

// Storage инкапсулирует клиент MongoDB и хэндлы коллекций каталога.
type Storage struct {
	Client *mongo.Client
	Movies *mongo.Collection
	Users  *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт индексы:
// уникальный по email пользователей и составной year/rating для выборок фильмов.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(database)
	s := &Storage{
		Client: client,
		Movies: db.Collection(MoviesCollection),
		Users:  db.Collection(UsersCollection),
	}
	if err = s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.Movies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "year", Value: -1}, {Key: "rating", Value: -1}},
	})
	return err
}

// Ping проверяет готовность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
