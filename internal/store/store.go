// Package store provides the resource stores behind the gateway: in-memory
// collections used as the mock fallback, and MongoDB collections used by the
// backend. Both satisfy the same interfaces.
package store

import (
	"context"

	"github.com/revisaai/revisaai/internal/models"
)

// The Get methods return a *models.NotFoundError for unknown ids. ListByOwner
// returns only the items whose OwnerID matches.
type MotoStore interface {
	List(ctx context.Context) ([]models.Moto, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Moto, error)
	Get(ctx context.Context, id string) (models.Moto, error)
	Create(ctx context.Context, in models.CreateMotoInput) (models.Moto, error)
	Update(ctx context.Context, id string, in models.UpdateMotoInput) (models.Moto, error)
	Delete(ctx context.Context, id string) error
}

type RevisionStore interface {
	List(ctx context.Context) ([]models.Revision, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Revision, error)
	Get(ctx context.Context, id string) (models.Revision, error)
	ListByMoto(ctx context.Context, motoID string) ([]models.Revision, error)
	Create(ctx context.Context, in models.CreateRevisionInput) (models.Revision, error)
	Update(ctx context.Context, id string, in models.UpdateRevisionInput) (models.Revision, error)
	Delete(ctx context.Context, id string) error
	DeleteByMoto(ctx context.Context, motoID string) error
}

type NotificationStore interface {
	List(ctx context.Context) ([]models.Notification, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Notification, error)
	Get(ctx context.Context, id string) (models.Notification, error)
	Create(ctx context.Context, in models.CreateNotificationInput) (models.Notification, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) (models.Notification, error)
	Delete(ctx context.Context, id string) error
	DeleteByRevision(ctx context.Context, revisionID string) error
	DeleteByMoto(ctx context.Context, motoID string) error
	UpdateStatusByRevision(ctx context.Context, revisionID string, status models.Status) ([]models.Notification, error)
}

// UserStore never returns password hashes.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Register(ctx context.Context, in models.RegisterInput) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	Update(ctx context.Context, id string, in models.UpdateProfileInput) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type WorkshopStore interface {
	Search(ctx context.Context, query string) ([]models.Workshop, error)
}
