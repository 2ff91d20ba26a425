package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost - cost factor bcrypt по умолчанию (10 раундов)
const DefaultPasswordCost = 10

// ErrPasswordMismatch возвращается, если пароль не соответствует хешу
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword хеширует пароль bcrypt с солью.
// cost вне диапазона [bcrypt.MinCost, bcrypt.MaxCost] заменяется на DefaultPasswordCost
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword сравнивает пароль с сохраненным bcrypt хешем.
// Возвращает ErrPasswordMismatch при несовпадении
func VerifyPassword(password, hash string) error {
	if hash == "" {
		return fmt.Errorf("hash cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}

	return nil
}
