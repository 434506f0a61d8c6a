package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/revisaai/revisaai/internal/models"
)

func p(format string, ids ...string) string {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}

// Auth

func (c *Client) Login(ctx context.Context, in models.LoginInput) Result[models.AuthResult] {
	return Do[models.AuthResult](ctx, c, http.MethodPost, "/auth/login", in)
}

func (c *Client) Register(ctx context.Context, in models.RegisterInput) Result[models.AuthResult] {
	return Do[models.AuthResult](ctx, c, http.MethodPost, "/auth/register", in)
}

func (c *Client) Logout(ctx context.Context) Result[Empty] {
	return Do[Empty](ctx, c, http.MethodPost, "/auth/logout", nil)
}

func (c *Client) UpdateProfile(ctx context.Context, id string, in models.UpdateProfileInput) Result[models.User] {
	return Do[models.User](ctx, c, http.MethodPut, p("/users/%s", id), in)
}

func (c *Client) DeleteAccount(ctx context.Context, id string) Result[Empty] {
	return Do[Empty](ctx, c, http.MethodDelete, p("/users/%s", id), nil)
}

// Motos

func (c *Client) ListMotos(ctx context.Context) Result[[]models.Moto] {
	return Do[[]models.Moto](ctx, c, http.MethodGet, "/motos", nil)
}

func (c *Client) CreateMoto(ctx context.Context, in models.CreateMotoInput) Result[models.Moto] {
	return Do[models.Moto](ctx, c, http.MethodPost, "/motos", in)
}

func (c *Client) UpdateMoto(ctx context.Context, id string, in models.UpdateMotoInput) Result[models.Moto] {
	return Do[models.Moto](ctx, c, http.MethodPatch, p("/motos/%s", id), in)
}

func (c *Client) DeleteMoto(ctx context.Context, id string) Result[Empty] {
	return Do[Empty](ctx, c, http.MethodDelete, p("/motos/%s", id), nil)
}

// Revisions

func (c *Client) ListRevisions(ctx context.Context) Result[[]models.Revision] {
	return Do[[]models.Revision](ctx, c, http.MethodGet, "/revisions", nil)
}

func (c *Client) ListMotoRevisions(ctx context.Context, motoID string) Result[[]models.Revision] {
	return Do[[]models.Revision](ctx, c, http.MethodGet, p("/motos/%s/revisions", motoID), nil)
}

func (c *Client) CreateRevision(ctx context.Context, in models.CreateRevisionInput) Result[models.Revision] {
	return Do[models.Revision](ctx, c, http.MethodPost, "/revisions", in)
}

func (c *Client) UpdateRevision(ctx context.Context, id string, in models.UpdateRevisionInput) Result[models.Revision] {
	return Do[models.Revision](ctx, c, http.MethodPatch, p("/revisions/%s", id), in)
}

func (c *Client) DeleteRevision(ctx context.Context, id string) Result[Empty] {
	return Do[Empty](ctx, c, http.MethodDelete, p("/revisions/%s", id), nil)
}

// Notifications

func (c *Client) ListNotifications(ctx context.Context) Result[[]models.Notification] {
	return Do[[]models.Notification](ctx, c, http.MethodGet, "/notifications", nil)
}

func (c *Client) CreateNotification(ctx context.Context, in models.CreateNotificationInput) Result[models.Notification] {
	return Do[models.Notification](ctx, c, http.MethodPost, "/notifications", in)
}

func (c *Client) UpdateNotificationStatus(ctx context.Context, id string, status models.Status) Result[models.Notification] {
	return Do[models.Notification](ctx, c, http.MethodPatch, p("/notifications/%s", id), models.StatusInput{Status: status})
}

func (c *Client) DeleteNotification(ctx context.Context, id string) Result[Empty] {
	return Do[Empty](ctx, c, http.MethodDelete, p("/notifications/%s", id), nil)
}

func (c *Client) DeleteNotificationsByRevision(ctx context.Context, revisionID string) Result[Empty] {
	return Do[Empty](ctx, c, http.MethodDelete, p("/notifications/revision/%s", revisionID), nil)
}

func (c *Client) UpdateNotificationsStatusByRevision(ctx context.Context, revisionID string, status models.Status) Result[[]models.Notification] {
	return Do[[]models.Notification](ctx, c, http.MethodPatch, p("/notifications/revision/%s", revisionID), models.StatusInput{Status: status})
}

// Workshops

func (c *Client) SearchWorkshops(ctx context.Context, query string) Result[[]models.Workshop] {
	path := "/workshops"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	return Do[[]models.Workshop](ctx, c, http.MethodGet, path, nil)
}
