package store

import (
	"context"
	"fmt"
)

// Set groups the stores of every resource. It is built once per process and
// handed to the gateway or the HTTP handlers.
type Set struct {
	Motos         MotoStore
	Revisions     RevisionStore
	Notifications NotificationStore
	Users         UserStore
	Workshops     WorkshopStore
}

// NewMemorySet returns in-memory stores preloaded with the demo data.
func NewMemorySet(opts ...Option) (*Set, error) {
	o := buildOptions(opts)
	now := o.now()
	users, err := NewMemoryUserStore(SeedUsers(now), opts...)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return &Set{
		Motos:         NewMemoryMotoStore(SeedMotos(now), opts...),
		Revisions:     NewMemoryRevisionStore(SeedRevisions(now), opts...),
		Notifications: NewMemoryNotificationStore(nil, opts...),
		Users:         users,
		Workshops:     NewMemoryWorkshopStore(SeedWorkshops(), opts...),
	}, nil
}

// DeleteMoto removes a moto together with its revisions and notifications.
// Children go first so a failure leaves the moto in place.
func (s *Set) DeleteMoto(ctx context.Context, id string) error {
	if err := s.Notifications.DeleteByMoto(ctx, id); err != nil {
		return fmt.Errorf("delete notifications of moto %s: %w", id, err)
	}
	if err := s.Revisions.DeleteByMoto(ctx, id); err != nil {
		return fmt.Errorf("delete revisions of moto %s: %w", id, err)
	}
	return s.Motos.Delete(ctx, id)
}

// DeleteRevision removes a revision together with its notifications.
func (s *Set) DeleteRevision(ctx context.Context, id string) error {
	if err := s.Notifications.DeleteByRevision(ctx, id); err != nil {
		return fmt.Errorf("delete notifications of revision %s: %w", id, err)
	}
	return s.Revisions.Delete(ctx, id)
}
