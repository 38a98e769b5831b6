// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и даты создания и обновления.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Роли пользователей системы.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
// Хэш пароля никогда не сериализуется в JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"` // Электронная почта, уникальная, в нижнем регистре
	PasswordHash string             `bson:"password" json:"-"`  // bcrypt-хэш пароля
	Role         string             `bson:"role" json:"role"`   // Роль пользователя, admin или user
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserView — публичное представление пользователя для ответов API.
// Не содержит хэша пароля.
type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// View возвращает публичное представление пользователя.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
