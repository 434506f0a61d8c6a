package provider

import (
	"context"

	"github.com/revisaai/revisaai/internal/gateway"
	"github.com/revisaai/revisaai/internal/models"
)

type MotoProvider struct {
	*cache[models.Moto]
	gw *gateway.MotoGateway
}

func NewMotoProvider(gw *gateway.MotoGateway) *MotoProvider {
	return &MotoProvider{cache: newCache(func(m models.Moto) string { return m.ID }), gw: gw}
}

func (p *MotoProvider) Load(ctx context.Context) error {
	return p.load(ctx, "load motos", "could not load motos", p.gw.List)
}

func (p *MotoProvider) Refresh(ctx context.Context) error { return p.Load(ctx) }

func (p *MotoProvider) Get(id string) (models.Moto, bool) {
	return p.find(func(m models.Moto) bool { return m.ID == id })
}

func (p *MotoProvider) Create(ctx context.Context, in models.CreateMotoInput) (models.Moto, error) {
	m, err := p.gw.Create(ctx, in)
	if err != nil {
		return models.Moto{}, fail("create moto", "could not create moto", err)
	}
	p.prepend(m)
	return m, nil
}

func (p *MotoProvider) Update(ctx context.Context, id string, in models.UpdateMotoInput) (models.Moto, error) {
	m, err := p.gw.Update(ctx, id, in)
	if err != nil {
		return models.Moto{}, fail("update moto", "could not update moto", err)
	}
	p.replace(m)
	return m, nil
}

func (p *MotoProvider) Remove(ctx context.Context, id string) error {
	if err := p.gw.Delete(ctx, id); err != nil {
		return fail("remove moto", "could not remove moto", err)
	}
	p.remove(id)
	return nil
}

type RevisionProvider struct {
	*cache[models.Revision]
	gw *gateway.RevisionGateway
}

func NewRevisionProvider(gw *gateway.RevisionGateway) *RevisionProvider {
	return &RevisionProvider{cache: newCache(func(r models.Revision) string { return r.ID }), gw: gw}
}

func (p *RevisionProvider) Load(ctx context.Context) error {
	return p.load(ctx, "load revisions", "could not load revisions", p.gw.List)
}

func (p *RevisionProvider) Refresh(ctx context.Context) error { return p.Load(ctx) }

func (p *RevisionProvider) Get(id string) (models.Revision, bool) {
	return p.find(func(r models.Revision) bool { return r.ID == id })
}

// ByMoto filters the cached revisions; it does not call the gateway.
func (p *RevisionProvider) ByMoto(motoID string) []models.Revision {
	return p.filter(func(r models.Revision) bool { return r.MotoID == motoID })
}

func (p *RevisionProvider) Create(ctx context.Context, in models.CreateRevisionInput) (models.Revision, error) {
	r, err := p.gw.Create(ctx, in)
	if err != nil {
		return models.Revision{}, fail("create revision", "could not create revision", err)
	}
	p.prepend(r)
	return r, nil
}

func (p *RevisionProvider) Update(ctx context.Context, id string, in models.UpdateRevisionInput) (models.Revision, error) {
	r, err := p.gw.Update(ctx, id, in)
	if err != nil {
		return models.Revision{}, fail("update revision", "could not update revision", err)
	}
	p.replace(r)
	return r, nil
}

func (p *RevisionProvider) SetStatus(ctx context.Context, id string, status models.Status) (models.Revision, error) {
	return p.Update(ctx, id, models.UpdateRevisionInput{Status: &status})
}

func (p *RevisionProvider) Remove(ctx context.Context, id string) error {
	if err := p.gw.Delete(ctx, id); err != nil {
		return fail("remove revision", "could not remove revision", err)
	}
	p.remove(id)
	return nil
}

func (p *RevisionProvider) dropMoto(motoID string) {
	p.removeWhere(func(r models.Revision) bool { return r.MotoID == motoID })
}

type NotificationProvider struct {
	*cache[models.Notification]
	gw *gateway.NotificationGateway
}

func NewNotificationProvider(gw *gateway.NotificationGateway) *NotificationProvider {
	return &NotificationProvider{cache: newCache(func(n models.Notification) string { return n.ID }), gw: gw}
}

func (p *NotificationProvider) Load(ctx context.Context) error {
	return p.load(ctx, "load notifications", "could not load notifications", p.gw.List)
}

func (p *NotificationProvider) Refresh(ctx context.Context) error { return p.Load(ctx) }

// Pending returns the cached notifications still pending.
func (p *NotificationProvider) Pending() []models.Notification {
	return p.filter(func(n models.Notification) bool { return n.Status == models.StatusPending })
}

func (p *NotificationProvider) Create(ctx context.Context, in models.CreateNotificationInput) (models.Notification, error) {
	n, err := p.gw.Create(ctx, in)
	if err != nil {
		return models.Notification{}, fail("create notification", "could not create notification", err)
	}
	p.prepend(n)
	return n, nil
}

func (p *NotificationProvider) SetStatus(ctx context.Context, id string, status models.Status) (models.Notification, error) {
	n, err := p.gw.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.Notification{}, fail("update notification", "could not update notification", err)
	}
	p.replace(n)
	return n, nil
}

func (p *NotificationProvider) Remove(ctx context.Context, id string) error {
	if err := p.gw.Delete(ctx, id); err != nil {
		return fail("remove notification", "could not remove notification", err)
	}
	p.remove(id)
	return nil
}

func (p *NotificationProvider) RemoveByRevision(ctx context.Context, revisionID string) error {
	if err := p.gw.DeleteByRevision(ctx, revisionID); err != nil {
		return fail("remove notifications", "could not remove notifications", err)
	}
	p.dropRevision(revisionID)
	return nil
}

// SetStatusByRevision sets the status of every cached notification of the revision.
func (p *NotificationProvider) SetStatusByRevision(ctx context.Context, revisionID string, status models.Status) error {
	if _, err := p.gw.UpdateStatusByRevision(ctx, revisionID, status); err != nil {
		return fail("update notifications", "could not update notifications", err)
	}
	p.mapWhere(
		func(n models.Notification) bool { return n.RevisionID == revisionID },
		func(n models.Notification) models.Notification { n.Status = status; return n },
	)
	return nil
}

func (p *NotificationProvider) dropRevision(revisionID string) {
	p.removeWhere(func(n models.Notification) bool { return n.RevisionID == revisionID })
}

func (p *NotificationProvider) dropMoto(motoID string) {
	p.removeWhere(func(n models.Notification) bool { return n.MotoID == motoID })
}

// WorkshopProvider caches the result of the last search.
type WorkshopProvider struct {
	*cache[models.Workshop]
	gw *gateway.WorkshopGateway
}

func NewWorkshopProvider(gw *gateway.WorkshopGateway) *WorkshopProvider {
	return &WorkshopProvider{cache: newCache(func(w models.Workshop) string { return w.ID }), gw: gw}
}

func (p *WorkshopProvider) Search(ctx context.Context, query string) ([]models.Workshop, error) {
	err := p.load(ctx, "search workshops", "could not search workshops", func(ctx context.Context) ([]models.Workshop, error) {
		return p.gw.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return p.Items(), nil
}
