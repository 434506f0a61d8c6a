package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/revisaai/revisaai/internal/gateway"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newApp(t *testing.T, slot session.Slot, opts ...store.Option) *App {
	t.Helper()
	stores, err := store.NewMemorySet(append([]store.Option{store.WithPasswordCost(bcrypt.MinCost)}, opts...)...)
	require.NoError(t, err)
	return NewApp(gateway.New(nil, stores), slot)
}

func login(t *testing.T, a *App) {
	t.Helper()
	_, err := a.Login(context.Background(), models.LoginInput{Email: "ricardo@gmail.com", Password: "1234"})
	require.NoError(t, err)
}

func revisionInput(motoID string) models.CreateRevisionInput {
	iso := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
	return models.CreateRevisionInput{MotoID: motoID, Title: "Troca de óleo", Service: "Óleo do motor", Date: iso, Time: iso}
}

func TestStatesAndReset(t *testing.T) {
	a := newApp(t, nil)
	assert.Equal(t, StateIdle, a.Motos.State())
	assert.Equal(t, "idle", a.Motos.State().String())

	login(t, a)
	assert.Equal(t, StateReady, a.Motos.State())
	assert.Equal(t, StateReady, a.Revisions.State())
	assert.Equal(t, StateReady, a.Notifications.State())
	assert.Len(t, a.Motos.Items(), 2)
	assert.Len(t, a.Revisions.Items(), 3)

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, StateIdle, a.Motos.State())
	assert.Empty(t, a.Motos.Items())
	assert.False(t, a.Auth.IsLoggedIn())
}

func TestLoadFailureRecordsMessage(t *testing.T) {
	a := newApp(t, nil, store.WithLatency(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Motos.Load(ctx)
	require.Error(t, err)
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "load motos", pe.Op)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, StateError, a.Motos.State())
	assert.Equal(t, context.Canceled.Error(), a.Motos.Message())
}

func TestFailDefaultMessage(t *testing.T) {
	e := fail("load motos", "could not load motos", errors.New(""))
	assert.Equal(t, "could not load motos", e.Error())
}

func TestCreatePrependsOneMatchingItem(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	before := a.Motos.Items()
	m, err := a.Motos.Create(ctx, models.CreateMotoInput{Name: "Biz", Brand: "Honda", Year: 2020, Km: 20500})
	require.NoError(t, err)

	after := a.Motos.Items()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, m, after[0])
	assert.Equal(t, "Biz", after[0].Name)
	assert.Equal(t, "Honda", after[0].Brand)
	assert.Equal(t, 2020, after[0].Year)
	assert.Equal(t, 20500.0, after[0].Km)
}

func TestFailedMutationLeavesCacheUnchanged(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	before := a.Motos.Items()
	name := "X"
	_, err := a.Motos.Update(ctx, "missing", models.UpdateMotoInput{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "update moto", pe.Op)
	assert.Equal(t, before, a.Motos.Items())
}

func TestUpdateReplacesByID(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	km := 31000.0
	m, err := a.Motos.Update(ctx, "1", models.UpdateMotoInput{Km: &km})
	require.NoError(t, err)
	got, ok := a.Motos.Get("1")
	require.True(t, ok)
	assert.Equal(t, m, got)
	assert.Equal(t, km, got.Km)
}

func TestMarkRevisionDoneUpdatesNotifications(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	r, n, err := a.AddRevision(ctx, revisionInput("1"))
	require.NoError(t, err)
	assert.Equal(t, r.ID, n.RevisionID)
	assert.Equal(t, "Óleo do motor em 15/03/2026", n.Description)
	other, _, err := a.AddRevision(ctx, revisionInput("2"))
	require.NoError(t, err)

	done, err := a.MarkRevisionDone(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, done.Status)

	for _, n := range a.Notifications.Items() {
		switch n.RevisionID {
		case r.ID:
			assert.Equal(t, models.StatusDone, n.Status)
		case other.ID:
			assert.Equal(t, models.StatusPending, n.Status)
		}
	}
	require.NoError(t, a.Notifications.Refresh(ctx))
	for _, n := range a.Notifications.Items() {
		if n.RevisionID == r.ID {
			assert.Equal(t, models.StatusDone, n.Status)
		}
	}
	assert.Len(t, a.Notifications.Pending(), 1)
}

func TestRemoveMotoDropsChildren(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	_, _, err := a.AddRevision(ctx, revisionInput("1"))
	require.NoError(t, err)
	require.NotEmpty(t, a.Revisions.ByMoto("1"))

	require.NoError(t, a.RemoveMoto(ctx, "1"))
	assert.Empty(t, a.Revisions.ByMoto("1"))
	for _, n := range a.Notifications.Items() {
		assert.NotEqual(t, "1", n.MotoID)
	}

	// the data layer agrees after a reload
	require.NoError(t, a.Start(ctx))
	assert.Empty(t, a.Revisions.ByMoto("1"))
	_, ok := a.Motos.Get("1")
	assert.False(t, ok)
}

func TestRemoveRevisionDropsNotifications(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	r, _, err := a.AddRevision(ctx, revisionInput("2"))
	require.NoError(t, err)
	require.NoError(t, a.RemoveRevision(ctx, r.ID))

	_, ok := a.Revisions.Get(r.ID)
	assert.False(t, ok)
	for _, n := range a.Notifications.Items() {
		assert.NotEqual(t, r.ID, n.RevisionID)
	}
}

func TestNotificationRemoveByRevisionKeepsRevision(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	login(t, a)

	r, _, err := a.AddRevision(ctx, revisionInput("2"))
	require.NoError(t, err)
	require.NoError(t, a.Notifications.RemoveByRevision(ctx, r.ID))
	assert.Empty(t, a.Notifications.Items())
	_, ok := a.Revisions.Get(r.ID)
	assert.True(t, ok)
}

func TestWorkshopSearch(t *testing.T) {
	a := newApp(t, nil)
	got, err := a.Workshops.Search(context.Background(), "troca de óleo")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, StateReady, a.Workshops.State())
}

func TestAuthPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	slot, err := session.NewSQLiteSlot(":memory:", "")
	require.NoError(t, err)
	t.Cleanup(func() { slot.Close() })

	a := newApp(t, slot)
	login(t, a)

	saved, err := slot.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.IsLoggedIn)
	assert.Equal(t, "jwt-mock-revisaai-1", saved.Token)

	b := newApp(t, slot)
	ok, err := b.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	u, ok := b.Auth.User()
	require.True(t, ok)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, StateReady, b.Motos.State())

	require.NoError(t, b.Logout(ctx))
	saved, err = slot.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, saved)

	ok, err = newApp(t, slot).Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginFailure(t *testing.T) {
	a := newApp(t, nil)
	_, err := a.Login(context.Background(), models.LoginInput{Email: "ricardo@gmail.com", Password: "bad"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidCredentials))
	assert.Equal(t, StateError, a.Auth.State())
	assert.False(t, a.Auth.IsLoggedIn())
	assert.Equal(t, StateIdle, a.Motos.State())
}

func TestUpdateProfileAndDeleteAccount(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)

	_, err := a.Auth.UpdateProfile(ctx, models.UpdateProfileInput{})
	require.Error(t, err)

	_, err = a.Register(ctx, models.RegisterInput{Name: "Maria", Email: "maria@x.com", Password: "abcd"})
	require.NoError(t, err)

	name := "Maria Silva"
	u, err := a.Auth.UpdateProfile(ctx, models.UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.Equal(t, name, a.Auth.Session().User.Name)

	require.NoError(t, a.DeleteAccount(ctx))
	assert.False(t, a.Auth.IsLoggedIn())
	_, err = a.Login(ctx, models.LoginInput{Email: "maria@x.com", Password: "abcd"})
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

type brokenMotos struct {
	store.MotoStore
}

func (brokenMotos) List(ctx context.Context) ([]models.Moto, error) {
	return nil, errors.New("disk full")
}

func TestLoginSucceedsWhenOnlyLoadingFails(t *testing.T) {
	ctx := context.Background()
	stores, err := store.NewMemorySet(store.WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, err)
	stores.Motos = brokenMotos{stores.Motos}
	a := NewApp(gateway.New(nil, stores), nil)

	u, err := a.Login(ctx, models.LoginInput{Email: "ricardo@gmail.com", Password: "1234"})
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "1", u.ID)
	assert.True(t, a.Auth.IsLoggedIn())
	assert.Equal(t, StateError, a.Motos.State())
	assert.Equal(t, StateReady, a.Revisions.State())

	_, err = a.Register(ctx, models.RegisterInput{Name: "Maria", Email: "maria@x.com", Password: "abcd"})
	assert.True(t, IsLoadError(err))

	_, err = NewApp(gateway.New(nil, stores), nil).Login(ctx, models.LoginInput{Email: "ricardo@gmail.com", Password: "bad"})
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.False(t, IsLoadError(err))
}
