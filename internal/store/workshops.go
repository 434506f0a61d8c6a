package store

import (
	"context"
	"slices"
	"strings"

	"github.com/revisaai/revisaai/internal/models"
)

// MemoryWorkshopStore is a read-only directory of repair shops.
type MemoryWorkshopStore struct {
	c *collection[models.Workshop]
}

func NewMemoryWorkshopStore(seed []models.Workshop, opts ...Option) *MemoryWorkshopStore {
	o := buildOptions(opts)
	return &MemoryWorkshopStore{c: newCollection(func(w models.Workshop) string { return w.ID }, o.latency, seed)}
}

// Search matches the query case-insensitively against name, address,
// neighborhood and services. An empty query returns every workshop.
func (s *MemoryWorkshopStore) Search(ctx context.Context, query string) ([]models.Workshop, error) {
	if err := s.c.wait(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Workshop
	if q == "" {
		out = s.c.list()
	} else {
		out = s.c.filter(func(w models.Workshop) bool { return workshopMatches(w, q) })
	}
	// the collection copies the slice of workshops, not their Services
	for i := range out {
		out[i].Services = slices.Clone(out[i].Services)
	}
	return out, nil
}

func workshopMatches(w models.Workshop, q string) bool {
	fields := append([]string{w.Name, w.Address, w.Neighborhood}, w.Services...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
