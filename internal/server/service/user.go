package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/devsocial/internal/crypto"
	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/events"
	"github.com/iudanet/devsocial/internal/server/storage"
	"github.com/iudanet/devsocial/internal/validation"
)

// UserService управляет учетными записями: регистрация, вход, поиск
type UserService struct {
	logger *slog.Logger
	users  storage.UserStorage
	opts   Options
}

// NewUserService creates a new user service
func NewUserService(logger *slog.Logger, users storage.UserStorage, opts Options) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
		opts:   opts.withDefaults(),
	}
}

// Register создает пользователя. Email нормализуется, пароль хешируется bcrypt,
// аватар берется из gravatar. Возвращает пользователя без хеша пароля
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)

	// Предварительная проверка дает понятную ошибку до дорогого хеширования.
	// Гонку двух регистраций закрывает уникальный индекс в хранилище
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := crypto.HashPassword(password, s.opts.PasswordCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Avatar:       crypto.AvatarURL(email),
		CreatedAt:    s.opts.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered",
		slog.String("user_id", user.ID))

	s.opts.Metrics.RecordRegistration()
	publish(ctx, s.logger, s.opts.Publisher, events.Event{
		Subject:   events.SubjectUserRegistered,
		UserID:    user.ID,
		Timestamp: user.CreatedAt,
	})

	return user.Public(), nil
}

// Authenticate проверяет email и пароль.
// Неизвестный email и неверный пароль неразличимы: оба дают ErrInvalidCredentials
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.opts.Metrics.RecordLogin(false)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			s.opts.Metrics.RecordLogin(false)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	s.opts.Metrics.RecordLogin(true)

	return user.Public(), nil
}

// FindByEmail returns the user with the given email (hash stripped)
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user.Public(), nil
}

// FindByID returns the user with the given id (hash stripped)
func (s *UserService) FindByID(ctx context.Context, userID string) (*models.User, error) {
	if !validID(userID) {
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user.Public(), nil
}

func mapUserErr(err error) error {
	if errors.Is(err, storage.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("failed to get user: %w", err)
}
