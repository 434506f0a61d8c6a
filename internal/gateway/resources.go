package gateway

import (
	"context"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/remote"
)

const (
	resMotos         = "motos"
	resRevisions     = "revisions"
	resNotifications = "notifications"
	resWorkshops     = "workshops"
)

type MotoGateway struct{ base }

func (g *MotoGateway) List(ctx context.Context) ([]models.Moto, error) {
	return run(g.base, resMotos, "list",
		func(rc *remote.Client) remote.Result[[]models.Moto] { return rc.ListMotos(ctx) },
		func() ([]models.Moto, error) { return g.stores.Motos.List(ctx) })
}

func (g *MotoGateway) Create(ctx context.Context, in models.CreateMotoInput) (models.Moto, error) {
	return run(g.base, resMotos, "create",
		func(rc *remote.Client) remote.Result[models.Moto] { return rc.CreateMoto(ctx, in) },
		func() (models.Moto, error) { return g.stores.Motos.Create(ctx, in) })
}

func (g *MotoGateway) Update(ctx context.Context, id string, in models.UpdateMotoInput) (models.Moto, error) {
	return run(g.base, resMotos, "update",
		func(rc *remote.Client) remote.Result[models.Moto] { return rc.UpdateMoto(ctx, id, in) },
		func() (models.Moto, error) { return g.stores.Motos.Update(ctx, id, in) })
}

// Delete removes the moto with its revisions and notifications.
func (g *MotoGateway) Delete(ctx context.Context, id string) error {
	return exec(g.base, resMotos, "delete",
		func(rc *remote.Client) remote.Result[remote.Empty] { return rc.DeleteMoto(ctx, id) },
		func() error { return g.stores.DeleteMoto(ctx, id) })
}

type RevisionGateway struct{ base }

func (g *RevisionGateway) List(ctx context.Context) ([]models.Revision, error) {
	return run(g.base, resRevisions, "list",
		func(rc *remote.Client) remote.Result[[]models.Revision] { return rc.ListRevisions(ctx) },
		func() ([]models.Revision, error) { return g.stores.Revisions.List(ctx) })
}

func (g *RevisionGateway) ListByMoto(ctx context.Context, motoID string) ([]models.Revision, error) {
	return run(g.base, resRevisions, "list_by_moto",
		func(rc *remote.Client) remote.Result[[]models.Revision] { return rc.ListMotoRevisions(ctx, motoID) },
		func() ([]models.Revision, error) { return g.stores.Revisions.ListByMoto(ctx, motoID) })
}

func (g *RevisionGateway) Create(ctx context.Context, in models.CreateRevisionInput) (models.Revision, error) {
	return run(g.base, resRevisions, "create",
		func(rc *remote.Client) remote.Result[models.Revision] { return rc.CreateRevision(ctx, in) },
		func() (models.Revision, error) { return g.stores.Revisions.Create(ctx, in) })
}

func (g *RevisionGateway) Update(ctx context.Context, id string, in models.UpdateRevisionInput) (models.Revision, error) {
	return run(g.base, resRevisions, "update",
		func(rc *remote.Client) remote.Result[models.Revision] { return rc.UpdateRevision(ctx, id, in) },
		func() (models.Revision, error) { return g.stores.Revisions.Update(ctx, id, in) })
}

// Delete removes the revision with its notifications.
func (g *RevisionGateway) Delete(ctx context.Context, id string) error {
	return exec(g.base, resRevisions, "delete",
		func(rc *remote.Client) remote.Result[remote.Empty] { return rc.DeleteRevision(ctx, id) },
		func() error { return g.stores.DeleteRevision(ctx, id) })
}

type NotificationGateway struct{ base }

func (g *NotificationGateway) List(ctx context.Context) ([]models.Notification, error) {
	return run(g.base, resNotifications, "list",
		func(rc *remote.Client) remote.Result[[]models.Notification] { return rc.ListNotifications(ctx) },
		func() ([]models.Notification, error) { return g.stores.Notifications.List(ctx) })
}

func (g *NotificationGateway) Create(ctx context.Context, in models.CreateNotificationInput) (models.Notification, error) {
	return run(g.base, resNotifications, "create",
		func(rc *remote.Client) remote.Result[models.Notification] { return rc.CreateNotification(ctx, in) },
		func() (models.Notification, error) { return g.stores.Notifications.Create(ctx, in) })
}

func (g *NotificationGateway) UpdateStatus(ctx context.Context, id string, status models.Status) (models.Notification, error) {
	return run(g.base, resNotifications, "update_status",
		func(rc *remote.Client) remote.Result[models.Notification] {
			return rc.UpdateNotificationStatus(ctx, id, status)
		},
		func() (models.Notification, error) { return g.stores.Notifications.UpdateStatus(ctx, id, status) })
}

func (g *NotificationGateway) Delete(ctx context.Context, id string) error {
	return exec(g.base, resNotifications, "delete",
		func(rc *remote.Client) remote.Result[remote.Empty] { return rc.DeleteNotification(ctx, id) },
		func() error { return g.stores.Notifications.Delete(ctx, id) })
}

func (g *NotificationGateway) DeleteByRevision(ctx context.Context, revisionID string) error {
	return exec(g.base, resNotifications, "delete_by_revision",
		func(rc *remote.Client) remote.Result[remote.Empty] {
			return rc.DeleteNotificationsByRevision(ctx, revisionID)
		},
		func() error { return g.stores.Notifications.DeleteByRevision(ctx, revisionID) })
}

func (g *NotificationGateway) UpdateStatusByRevision(ctx context.Context, revisionID string, status models.Status) ([]models.Notification, error) {
	return run(g.base, resNotifications, "update_status_by_revision",
		func(rc *remote.Client) remote.Result[[]models.Notification] {
			return rc.UpdateNotificationsStatusByRevision(ctx, revisionID, status)
		},
		func() ([]models.Notification, error) {
			return g.stores.Notifications.UpdateStatusByRevision(ctx, revisionID, status)
		})
}

type WorkshopGateway struct{ base }

func (g *WorkshopGateway) Search(ctx context.Context, query string) ([]models.Workshop, error) {
	return run(g.base, resWorkshops, "search",
		func(rc *remote.Client) remote.Result[[]models.Workshop] { return rc.SearchWorkshops(ctx, query) },
		func() ([]models.Workshop, error) { return g.stores.Workshops.Search(ctx, query) })
}
