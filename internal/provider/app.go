package provider

import (
	"context"
	"errors"

	"github.com/revisaai/revisaai/internal/gateway"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/session"
)

// App is the state of one user session across every resource.
type App struct {
	Auth          *AuthProvider
	Motos         *MotoProvider
	Revisions     *RevisionProvider
	Notifications *NotificationProvider
	Workshops     *WorkshopProvider
}

func NewApp(gw *gateway.Gateway, slot session.Slot) *App {
	return &App{
		Auth:          NewAuthProvider(gw.Auth, slot),
		Motos:         NewMotoProvider(gw.Motos),
		Revisions:     NewRevisionProvider(gw.Revisions),
		Notifications: NewNotificationProvider(gw.Notifications),
		Workshops:     NewWorkshopProvider(gw.Workshops),
	}
}

// LoadError is returned by Login, Register and Restore when the session was
// established and saved but loading the user's data failed. The failing
// providers are left in StateError with their message.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "load data: " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err only means the data of a signed-in user
// could not be loaded.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Login signs in and loads the user's data. Any error other than a *LoadError
// means the sign-in itself failed and nothing was saved.
func (a *App) Login(ctx context.Context, in models.LoginInput) (models.User, error) {
	u, err := a.Auth.Login(ctx, in)
	if err != nil {
		return models.User{}, err
	}
	return u, a.start(ctx)
}

// Register behaves like Login for a new account.
func (a *App) Register(ctx context.Context, in models.RegisterInput) (models.User, error) {
	u, err := a.Auth.Register(ctx, in)
	if err != nil {
		return models.User{}, err
	}
	return u, a.start(ctx)
}

// Start loads every resource provider. Each one is attempted; failures are joined.
func (a *App) Start(ctx context.Context) error {
	return errors.Join(
		a.Motos.Load(ctx),
		a.Revisions.Load(ctx),
		a.Notifications.Load(ctx),
	)
}

func (a *App) start(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return &LoadError{Err: err}
	}
	return nil
}

// Restore reinstates a saved session and loads the providers when there was
// one. ok is true whenever a session was restored, even with a *LoadError.
func (a *App) Restore(ctx context.Context) (bool, error) {
	ok, err := a.Auth.Restore(ctx)
	if err != nil || !ok {
		return false, err
	}
	return true, a.start(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	err := a.Auth.Logout(ctx)
	a.reset()
	return err
}

func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.Auth.DeleteAccount(ctx); err != nil {
		return err
	}
	a.reset()
	return nil
}

func (a *App) reset() {
	a.Motos.Reset()
	a.Revisions.Reset()
	a.Notifications.Reset()
	a.Workshops.Reset()
}

// AddRevision creates the revision and then its reminder. The two calls are
// independent: when the second fails the revision stays and is returned with the error.
func (a *App) AddRevision(ctx context.Context, in models.CreateRevisionInput) (models.Revision, models.Notification, error) {
	r, err := a.Revisions.Create(ctx, in)
	if err != nil {
		return models.Revision{}, models.Notification{}, err
	}
	n, err := a.Notifications.Create(ctx, models.NotificationFor(r))
	if err != nil {
		return r, models.Notification{}, err
	}
	return r, n, nil
}

func (a *App) MarkRevisionDone(ctx context.Context, id string) (models.Revision, error) {
	r, err := a.Revisions.SetStatus(ctx, id, models.StatusDone)
	if err != nil {
		return models.Revision{}, err
	}
	if err := a.Notifications.SetStatusByRevision(ctx, id, models.StatusDone); err != nil {
		return r, err
	}
	return r, nil
}

// RemoveRevision deletes the revision; the data layer removes its notifications.
func (a *App) RemoveRevision(ctx context.Context, id string) error {
	if err := a.Revisions.Remove(ctx, id); err != nil {
		return err
	}
	a.Notifications.dropRevision(id)
	return nil
}

// RemoveMoto deletes the moto; the data layer removes its revisions and notifications.
func (a *App) RemoveMoto(ctx context.Context, id string) error {
	if err := a.Motos.Remove(ctx, id); err != nil {
		return err
	}
	a.Revisions.dropMoto(id)
	a.Notifications.dropMoto(id)
	return nil
}
