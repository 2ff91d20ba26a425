package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/devsocial/internal/crypto"
	"github.com/iudanet/devsocial/internal/server/events"
)

func newTestUserService(t *testing.T) (*UserService, *fakeUserStorage, *recordingPublisher, *countingRecorder) {
	t.Helper()

	users := newFakeUserStorage()
	pub := &recordingPublisher{}
	rec := newCountingRecorder()
	svc := NewUserService(setupTestLogger(), users, Options{
		Publisher:    pub,
		Metrics:      rec,
		PasswordCost: bcrypt.MinCost,
		Now:          stepClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	})

	return svc, users, pub, rec
}

func TestUserService_Register(t *testing.T) {
	svc, users, pub, rec := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, " Alice ", " A@X.com ", "secret1")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash, "returned user must not carry the hash")
	assert.Equal(t, crypto.AvatarURL("a@x.com"), user.Avatar)
	assert.Equal(t, time.UTC, user.CreatedAt.Location())

	stored, err := users.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, crypto.VerifyPassword("secret1", stored.PasswordHash))

	assert.Equal(t, []string{events.SubjectUserRegistered}, pub.subjects())
	assert.Equal(t, 1, rec.registrations)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, users, _, rec := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice Again", "A@X.COM", "secret2")
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, 1, users.count())
	assert.Equal(t, 1, rec.registrations)
}

func TestUserService_Register_Concurrent(t *testing.T) {
	svc, users, _, _ := newTestUserService(t)
	ctx := context.Background()

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, "Racer", "race@x.com", "secret1")
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrEmailExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, 1, users.count())
}

func TestUserService_Register_StorageError(t *testing.T) {
	svc, users, pub, _ := newTestUserService(t)
	users.err = errStorage

	_, err := svc.Register(context.Background(), "Alice", "a@x.com", "secret1")
	assert.ErrorIs(t, err, errStorage)
	assert.Empty(t, pub.subjects())
}

func TestUserService_Register_PublishFailureIgnored(t *testing.T) {
	svc, _, pub, _ := newTestUserService(t)
	pub.err = errStorage

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Authenticate(t *testing.T) {
	svc, _, _, rec := newTestUserService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "a@x.com", password: "secret1"},
		{name: "case insensitive email", email: "  A@x.COM", password: "secret1"},
		{name: "wrong password", email: "a@x.com", password: "secret2", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "b@x.com", password: "secret1", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
			assert.Empty(t, user.PasswordHash)
		})
	}

	assert.Equal(t, 2, rec.logins[true])
	assert.Equal(t, 2, rec.logins[false])
}

func TestUserService_Find(t *testing.T) {
	svc, _, _, _ := newTestUserService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	byID, err := svc.FindByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.Empty(t, byID.PasswordHash)

	byEmail, err := svc.FindByEmail(ctx, "A@X.com")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)
	assert.Empty(t, byEmail.PasswordHash)

	_, err = svc.FindByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.FindByID(ctx, strings.Replace(registered.ID, registered.ID[:8], "00000000", 1))
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
