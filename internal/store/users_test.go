package store

import (
	"context"
	"testing"
	"time"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserStore(t *testing.T) *MemoryUserStore {
	t.Helper()
	s, err := NewMemoryUserStore(SeedUsers(time.Now()), WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, err)
	return s
}

func TestAuthenticateSeededUser(t *testing.T) {
	s := newUserStore(t)
	u, err := s.Authenticate(context.Background(), "Ricardo@Gmail.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "Ricardo Pereira", u.Name)
	assert.Equal(t, "ricardo@gmail.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	_, err = s.Authenticate(context.Background(), "ricardo@gmail.com", "4321")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = s.Authenticate(context.Background(), "nobody@gmail.com", "1234")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newUserStore(t)
	before := s.Len()

	_, err := s.Register(context.Background(), models.RegisterInput{Name: "Outro Ricardo", Email: "ricardo@gmail.com", Password: "abcd"})
	require.ErrorIs(t, err, models.ErrAlreadyExists)
	require.Equal(t, before, s.Len())

	_, err = s.Register(context.Background(), models.RegisterInput{Name: "Outro Ricardo", Email: " RICARDO@gmail.com ", Password: "abcd"})
	require.ErrorIs(t, err, models.ErrAlreadyExists)
	require.Equal(t, before, s.Len())
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	s := newUserStore(t)
	u, err := s.Register(ctx, models.RegisterInput{Name: " Ana Souza ", Email: "Ana@Mail.com", Password: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", u.Name)
	assert.Equal(t, "ana@mail.com", u.Email)

	got, err := s.Authenticate(ctx, "ana@mail.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, u.ID, users[0].ID)
	for _, x := range users {
		assert.Empty(t, x.PasswordHash)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newUserStore(t)
	other, err := s.Register(ctx, models.RegisterInput{Name: "Ana Souza", Email: "ana@mail.com", Password: "segredo"})
	require.NoError(t, err)

	name := "Ricardo P."
	pw := "nova-senha"
	u, err := s.Update(ctx, "1", models.UpdateProfileInput{Name: &name, Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "Ricardo P.", u.Name)
	_, err = s.Authenticate(ctx, "ricardo@gmail.com", "nova-senha")
	require.NoError(t, err)

	taken := "ana@mail.com"
	_, err = s.Update(ctx, "1", models.UpdateProfileInput{Email: &taken})
	require.ErrorIs(t, err, models.ErrAlreadyExists)

	_, err = s.Update(ctx, "missing", models.UpdateProfileInput{Name: &name})
	require.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.Delete(ctx, other.ID))
	require.NoError(t, s.Delete(ctx, other.ID))
	_, err = s.Get(ctx, other.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}
