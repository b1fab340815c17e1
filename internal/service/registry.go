package service

import (
	"context"

	"github.com/juneandco/aisle/internal/model"
)

// RegistryService manages a wedding's gift registry. Items are keyed by
// their exact name.
type RegistryService struct {
	weddings WeddingStore
}

// RegistryServiceConfig holds the dependencies for RegistryService
type RegistryServiceConfig struct {
	Weddings WeddingStore
}

// NewRegistryService creates a new registry service
func NewRegistryService(cfg RegistryServiceConfig) *RegistryService {
	return &RegistryService{weddings: cfg.Weddings}
}

// Add appends an available registry item. Exact-name duplicates are
// rejected; near-duplicates are distinct items.
func (s *RegistryService) Add(ctx context.Context, weddingID string, req model.AddRegistryItemRequest) (*model.Wedding, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	if wedding.FindRegistryItem(req.Name) != -1 {
		return nil, ErrRegistryItemExists
	}

	wedding.Registry = append(wedding.Registry, model.RegistryItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      model.RegistryAvailable,
		PurchasedBy: "",
	})

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// UpdateStatus changes an item's purchase state. The purchaser string is
// stored verbatim, including when marking an item back to available.
func (s *RegistryService) UpdateStatus(ctx context.Context, weddingID, name string, req model.UpdateRegistryItemRequest) (*model.Wedding, error) {
	if !req.Status.IsValid() {
		return nil, ErrInvalidRegistryStatus
	}

	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindRegistryItem(name)
	if idx == -1 {
		return nil, ErrRegistryItemNotFound
	}
	wedding.Registry[idx].Status = req.Status
	wedding.Registry[idx].PurchasedBy = req.PurchasedBy

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// Delete removes an item from the registry by name.
func (s *RegistryService) Delete(ctx context.Context, weddingID, name string) (*model.Wedding, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindRegistryItem(name)
	if idx == -1 {
		return nil, ErrRegistryItemNotFound
	}
	wedding.Registry = append(wedding.Registry[:idx], wedding.Registry[idx+1:]...)

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// List returns the full registry. Empty is fine.
func (s *RegistryService) List(ctx context.Context, weddingID string) ([]model.RegistryItem, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return wedding.Registry, nil
}

// Get returns a single registry item by exact name.
func (s *RegistryService) Get(ctx context.Context, weddingID, name string) (*model.RegistryItem, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindRegistryItem(name)
	if idx == -1 {
		return nil, ErrRegistryItemNotFound
	}
	return &wedding.Registry[idx], nil
}
