package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/stretchr/testify/require"
)

func sample() *Session {
	return &Session{
		User:       &models.User{ID: "1", Name: "Ricardo", Email: "ricardo@gmail.com"},
		Token:      "jwt-mock-revisaai-1",
		IsLoggedIn: true,
	}
}

func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	got, err := slot.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, slot.Save(ctx, sample()))
	got, err = slot.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sample(), got)

	// overwrite
	next := sample()
	next.Token = "other"
	require.NoError(t, slot.Save(ctx, next))
	got, err = slot.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "other", got.Token)

	require.NoError(t, slot.Clear(ctx))
	got, err = slot.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	// clearing twice is fine
	require.NoError(t, slot.Clear(ctx))
}

func TestRedisSlot(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	exerciseSlot(t, NewRedisSlot(client, "test:session"))
}

func TestSQLiteSlot_Memory(t *testing.T) {
	slot, err := NewSQLiteSlot(":memory:", "")
	require.NoError(t, err)
	t.Cleanup(func() { slot.Close() })
	exerciseSlot(t, slot)
}

func TestSQLiteSlot_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	ctx := context.Background()

	first, err := NewSQLiteSlot(path, "k")
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, sample()))
	require.NoError(t, first.Close())

	second, err := NewSQLiteSlot(path, "k")
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sample(), got)
}

func TestRedisDenylist(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	d := NewRedisDenylist(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	ctx := context.Background()

	require.NoError(t, d.Deny(ctx, "tok", 2*time.Second))
	ok, err := d.IsDenied(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)

	m.FastForward(3 * time.Second)
	ok, err = d.IsDenied(ctx, "tok")
	require.NoError(t, err)
	require.False(t, ok)

	// already expired tokens are not stored
	require.NoError(t, d.Deny(ctx, "old", -time.Second))
	ok, err = d.IsDenied(ctx, "old")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisDenylist_NoClient(t *testing.T) {
	var d *RedisDenylist
	ctx := context.Background()
	require.NoError(t, d.Deny(ctx, "t", time.Second))
	ok, err := d.IsDenied(ctx, "t")
	require.NoError(t, err)
	require.False(t, ok)
}
