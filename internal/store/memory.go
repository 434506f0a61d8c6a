package store

import (
	"context"
	"time"

	"github.com/revisaai/revisaai/internal/models"
)

// MemoryMotoStore keeps motos in process memory.
type MemoryMotoStore struct {
	c   *collection[models.Moto]
	now func() time.Time
}

func NewMemoryMotoStore(seed []models.Moto, opts ...Option) *MemoryMotoStore {
	o := buildOptions(opts)
	return &MemoryMotoStore{
		c:   newCollection(func(m models.Moto) string { return m.ID }, o.latency, seed),
		now: o.now,
	}
}

func (s *MemoryMotoStore) List(ctx context.Context) ([]models.Moto, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.list(), nil
}

func (s *MemoryMotoStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Moto, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.filter(func(m models.Moto) bool { return m.OwnerID == ownerID }), nil
}

func (s *MemoryMotoStore) Get(ctx context.Context, id string) (models.Moto, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Moto{}, err
	}
	m, ok := s.c.find(func(m models.Moto) bool { return m.ID == id })
	if !ok {
		return models.Moto{}, &models.NotFoundError{Resource: "moto", ID: id}
	}
	return m, nil
}

func (s *MemoryMotoStore) Create(ctx context.Context, in models.CreateMotoInput) (models.Moto, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Moto{}, err
	}
	return s.c.insert(nil, func(id string) models.Moto {
		m := models.NewMoto(in, s.now())
		m.ID = id
		return m
	})
}

func (s *MemoryMotoStore) Update(ctx context.Context, id string, in models.UpdateMotoInput) (models.Moto, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Moto{}, err
	}
	m, ok, _ := s.c.update(id, func(cur models.Moto, _ []models.Moto) (models.Moto, error) {
		return cur.Apply(in), nil
	})
	if !ok {
		return models.Moto{}, &models.NotFoundError{Resource: "moto", ID: id}
	}
	return m, nil
}

// Delete is a no-op for unknown ids.
func (s *MemoryMotoStore) Delete(ctx context.Context, id string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(m models.Moto) bool { return m.ID == id })
	return nil
}

// MemoryRevisionStore keeps revisions in process memory.
type MemoryRevisionStore struct {
	c   *collection[models.Revision]
	now func() time.Time
}

func NewMemoryRevisionStore(seed []models.Revision, opts ...Option) *MemoryRevisionStore {
	o := buildOptions(opts)
	return &MemoryRevisionStore{
		c:   newCollection(func(r models.Revision) string { return r.ID }, o.latency, seed),
		now: o.now,
	}
}

func (s *MemoryRevisionStore) List(ctx context.Context) ([]models.Revision, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.list(), nil
}

func (s *MemoryRevisionStore) ListByMoto(ctx context.Context, motoID string) ([]models.Revision, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.filter(func(r models.Revision) bool { return r.MotoID == motoID }), nil
}

func (s *MemoryRevisionStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Revision, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.filter(func(r models.Revision) bool { return r.OwnerID == ownerID }), nil
}

func (s *MemoryRevisionStore) Get(ctx context.Context, id string) (models.Revision, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Revision{}, err
	}
	r, ok := s.c.find(func(r models.Revision) bool { return r.ID == id })
	if !ok {
		return models.Revision{}, &models.NotFoundError{Resource: "revision", ID: id}
	}
	return r, nil
}

func (s *MemoryRevisionStore) Create(ctx context.Context, in models.CreateRevisionInput) (models.Revision, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Revision{}, err
	}
	return s.c.insert(nil, func(id string) models.Revision {
		r := models.NewRevision(in, s.now())
		r.ID = id
		return r
	})
}

func (s *MemoryRevisionStore) Update(ctx context.Context, id string, in models.UpdateRevisionInput) (models.Revision, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Revision{}, err
	}
	r, ok, _ := s.c.update(id, func(cur models.Revision, _ []models.Revision) (models.Revision, error) {
		return cur.Apply(in), nil
	})
	if !ok {
		return models.Revision{}, &models.NotFoundError{Resource: "revision", ID: id}
	}
	return r, nil
}

func (s *MemoryRevisionStore) Delete(ctx context.Context, id string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(r models.Revision) bool { return r.ID == id })
	return nil
}

func (s *MemoryRevisionStore) DeleteByMoto(ctx context.Context, motoID string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(r models.Revision) bool { return r.MotoID == motoID })
	return nil
}

// MemoryNotificationStore keeps notifications in process memory.
type MemoryNotificationStore struct {
	c   *collection[models.Notification]
	now func() time.Time
}

func NewMemoryNotificationStore(seed []models.Notification, opts ...Option) *MemoryNotificationStore {
	o := buildOptions(opts)
	return &MemoryNotificationStore{
		c:   newCollection(func(n models.Notification) string { return n.ID }, o.latency, seed),
		now: o.now,
	}
}

func (s *MemoryNotificationStore) List(ctx context.Context) ([]models.Notification, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.list(), nil
}

func (s *MemoryNotificationStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Notification, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.filter(func(n models.Notification) bool { return n.OwnerID == ownerID }), nil
}

func (s *MemoryNotificationStore) Get(ctx context.Context, id string) (models.Notification, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Notification{}, err
	}
	n, ok := s.c.find(func(n models.Notification) bool { return n.ID == id })
	if !ok {
		return models.Notification{}, &models.NotFoundError{Resource: "notification", ID: id}
	}
	return n, nil
}

func (s *MemoryNotificationStore) Create(ctx context.Context, in models.CreateNotificationInput) (models.Notification, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Notification{}, err
	}
	return s.c.insert(nil, func(id string) models.Notification {
		n := models.NewNotification(in, s.now())
		n.ID = id
		return n
	})
}

func (s *MemoryNotificationStore) UpdateStatus(ctx context.Context, id string, status models.Status) (models.Notification, error) {
	if err := s.c.wait(ctx); err != nil {
		return models.Notification{}, err
	}
	n, ok, _ := s.c.update(id, func(cur models.Notification, _ []models.Notification) (models.Notification, error) {
		cur.Status = status
		return cur, nil
	})
	if !ok {
		return models.Notification{}, &models.NotFoundError{Resource: "notification", ID: id}
	}
	return n, nil
}

func (s *MemoryNotificationStore) Delete(ctx context.Context, id string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(n models.Notification) bool { return n.ID == id })
	return nil
}

func (s *MemoryNotificationStore) DeleteByRevision(ctx context.Context, revisionID string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(n models.Notification) bool { return n.RevisionID == revisionID })
	return nil
}

func (s *MemoryNotificationStore) DeleteByMoto(ctx context.Context, motoID string) error {
	if err := s.c.wait(ctx); err != nil {
		return err
	}
	s.c.removeWhere(func(n models.Notification) bool { return n.MotoID == motoID })
	return nil
}

func (s *MemoryNotificationStore) UpdateStatusByRevision(ctx context.Context, revisionID string, status models.Status) ([]models.Notification, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	return s.c.updateWhere(
		func(n models.Notification) bool { return n.RevisionID == revisionID },
		func(n models.Notification) models.Notification {
			n.Status = status
			return n
		},
	), nil
}
