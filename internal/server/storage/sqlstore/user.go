package sqlstore

import (
	"context"
	"fmt"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	// Уникальность email проверяется самой БД: при гонке двух регистраций
	// вторая вставка не выполнится, и мы вернем ErrUserAlreadyExists
	query := s.db.Rebind(`
		INSERT INTO users (id, name, email, password_hash, avatar, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING
	`)

	result, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserAlreadyExists
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, "id", userID)
}

// getUser ищет пользователя по одному столбцу; column - только из констант выше
func (s *Storage) getUser(ctx context.Context, column, value string) (*models.User, error) {
	query := s.db.Rebind(`
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users
		WHERE ` + column + ` = ?
	`)

	user := &models.User{}
	if err := s.db.GetContext(ctx, user, query, value); err != nil {
		if isNoRows(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
