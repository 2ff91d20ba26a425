package models

import "time"

// User представляет зарегистрированного пользователя
type User struct {
	CreatedAt    time.Time `json:"date" db:"created_at"` // время регистрации (UTC)
	ID           string    `json:"_id" db:"id"`          // UUID пользователя
	Name         string    `json:"name" db:"name"`       // отображаемое имя
	Email        string    `json:"email" db:"email"`     // уникальный email (lower-case)
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt хеш пароля, наружу не отдается
	Avatar       string    `json:"avatar" db:"avatar"`   // URL аватара (gravatar)
}

// Public возвращает копию пользователя без хеша пароля
func (u *User) Public() *User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}
