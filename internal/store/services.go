package store

import (
	"slices"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// ServiceStore owns bookable services with soft-delete semantics.
type ServiceStore struct {
	mu       sync.RWMutex
	seed     []model.Service
	services []model.Service
	opts     Options
}

// NewServiceStore creates a store initialised from seed.
func NewServiceStore(seed []model.Service, opts Options) *ServiceStore {
	s := &ServiceStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *ServiceStore) Reset() {
	services := make([]model.Service, 0, len(s.seed))
	for _, svc := range s.seed {
		services = append(services, svc.Clone())
	}

	s.mu.Lock()
	s.services = services
	s.mu.Unlock()
}

// List returns services that are not soft-deleted.
func (s *ServiceStore) List() []model.Service {
	return s.collect(false)
}

// ListAll returns every service including soft-deleted ones.
func (s *ServiceStore) ListAll() []model.Service {
	return s.collect(true)
}

func (s *ServiceStore) collect(withDeleted bool) []model.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.DeletedAt != nil && !withDeleted {
			continue
		}
		result = append(result, svc.Clone())
	}
	return result
}

// GetByID returns a visible service.
func (s *ServiceStore) GetByID(id string) (model.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 || s.services[i].DeletedAt != nil {
		return model.Service{}, false
	}
	return s.services[i].Clone(), true
}

// Add stores a new service.
func (s *ServiceStore) Add(in model.ServiceInput) model.Service {
	now := s.opts.Now()
	svc := model.Service{
		ID:              s.opts.NewID(),
		Name:            in.Name,
		Category:        in.Category,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Status:          in.Status,
		Image:           in.Image,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if svc.Status == "" {
		svc.Status = model.CatalogStatusActive
	}

	s.mu.Lock()
	s.services = append(s.services, svc)
	s.opts.record(model.JournalStreamCatalog, svc.ID, "service_created", map[string]any{"name": svc.Name, "price": svc.Price})
	s.mu.Unlock()
	return svc.Clone()
}

// Update merges patch into a visible service.
func (s *ServiceStore) Update(id string, patch model.ServicePatch) bool {
	return s.replace(id, "updated", false, func(svc *model.Service) {
		if patch.Name != nil {
			svc.Name = *patch.Name
		}
		if patch.Category != nil {
			svc.Category = *patch.Category
		}
		if patch.Description != nil {
			svc.Description = *patch.Description
		}
		if patch.Price != nil {
			svc.Price = *patch.Price
		}
		if patch.DurationMinutes != nil {
			svc.DurationMinutes = *patch.DurationMinutes
		}
		if patch.Status != nil {
			svc.Status = *patch.Status
		}
		if patch.Image != nil {
			svc.Image = *patch.Image
		}
	})
}

// SoftDelete hides a visible service from listings.
func (s *ServiceStore) SoftDelete(id string) bool {
	return s.replace(id, "soft_deleted", false, func(svc *model.Service) {
		now := s.opts.Now()
		svc.DeletedAt = &now
	})
}

// Restore makes a soft-deleted service visible again.
func (s *ServiceStore) Restore(id string) bool {
	return s.replace(id, "restored", true, func(svc *model.Service) {
		svc.DeletedAt = nil
	})
}

func (s *ServiceStore) replace(id, kind string, deleted bool, mutate func(*model.Service)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || (s.services[i].DeletedAt != nil) != deleted {
		return false
	}
	next := s.services[i].Clone()
	mutate(&next)
	next.UpdatedAt = s.opts.touch(next.UpdatedAt)
	s.services[i] = next
	s.opts.record(model.JournalStreamCatalog, id, "service_"+kind, nil)
	return true
}

func (s *ServiceStore) indexOf(id string) int {
	return slices.IndexFunc(s.services, func(svc model.Service) bool { return svc.ID == id })
}
