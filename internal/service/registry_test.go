package service

import (
	"context"
	"testing"

	"github.com/juneandco/aisle/internal/model"
)

func registryServiceWith(wedding *model.Wedding, wrote **model.Wedding) *RegistryService {
	return NewRegistryService(RegistryServiceConfig{Weddings: &mockWeddingStore{
		getFunc: func(ctx context.Context, id string) (*model.Wedding, error) {
			return wedding, nil
		},
		upsertFunc: func(ctx context.Context, w *model.Wedding) error {
			if wrote != nil {
				*wrote = w
			}
			return nil
		},
	}})
}

func weddingWithRegistry(items ...model.RegistryItem) *model.Wedding {
	w := testWedding()
	w.Registry = items
	return w
}

func TestAddRegistryItem_AppendsAvailableItem(t *testing.T) {
	t.Parallel()
	var wrote *model.Wedding
	svc := registryServiceWith(testWedding(), &wrote)

	wedding, err := svc.Add(context.Background(), "w1", model.AddRegistryItemRequest{
		Name:  "Stand Mixer",
		Price: 450,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(wedding.Registry) != 1 {
		t.Fatalf("expected 1 item, got %d", len(wedding.Registry))
	}
	item := wedding.Registry[0]
	if item.Status != model.RegistryAvailable {
		t.Errorf("expected available item, got %s", item.Status)
	}
	if item.PurchasedBy != "" {
		t.Errorf("expected empty purchaser, got %q", item.PurchasedBy)
	}
	if wrote == nil {
		t.Error("expected wedding persisted")
	}
}

func TestAddRegistryItem_ExactDuplicateName_ReturnsErrRegistryItemExists(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(weddingWithRegistry(model.RegistryItem{
		Name:   "Stand Mixer",
		Status: model.RegistryAvailable,
	}), nil)

	_, err := svc.Add(context.Background(), "w1", model.AddRegistryItemRequest{Name: "Stand Mixer"})

	if err != ErrRegistryItemExists {
		t.Errorf("expected ErrRegistryItemExists, got %v", err)
	}
}

func TestAddRegistryItem_NearDuplicateName_IsDistinct(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(weddingWithRegistry(model.RegistryItem{
		Name:   "Stand Mixer",
		Status: model.RegistryAvailable,
	}), nil)

	_, err := svc.Add(context.Background(), "w1", model.AddRegistryItemRequest{Name: "stand mixer"})

	if err != nil {
		t.Errorf("expected near-duplicate name to be a distinct item, got %v", err)
	}
}

func TestUpdateRegistryItem_MarksPurchasedWithPurchaser(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(weddingWithRegistry(model.RegistryItem{
		Name:   "Stand Mixer",
		Status: model.RegistryAvailable,
	}), nil)

	wedding, err := svc.UpdateStatus(context.Background(), "w1", "Stand Mixer", model.UpdateRegistryItemRequest{
		Status:      model.RegistryPurchased,
		PurchasedBy: "Aunt Viv",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	item := wedding.Registry[0]
	if item.Status != model.RegistryPurchased || item.PurchasedBy != "Aunt Viv" {
		t.Errorf("expected purchased by Aunt Viv, got %+v", item)
	}
}

func TestUpdateRegistryItem_UnknownStatus_ReturnsErrInvalidRegistryStatus(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(testWedding(), nil)

	_, err := svc.UpdateStatus(context.Background(), "w1", "Stand Mixer", model.UpdateRegistryItemRequest{Status: "reserved"})

	if err != ErrInvalidRegistryStatus {
		t.Errorf("expected ErrInvalidRegistryStatus, got %v", err)
	}
}

func TestUpdateRegistryItem_UnknownName_ReturnsErrRegistryItemNotFound(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(testWedding(), nil)

	_, err := svc.UpdateStatus(context.Background(), "w1", "Stand Mixer", model.UpdateRegistryItemRequest{Status: model.RegistryPurchased})

	if err != ErrRegistryItemNotFound {
		t.Errorf("expected ErrRegistryItemNotFound, got %v", err)
	}
}

func TestDeleteRegistryItem_RemovesByName(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(weddingWithRegistry(
		model.RegistryItem{Name: "Stand Mixer", Status: model.RegistryAvailable},
		model.RegistryItem{Name: "Dutch Oven", Status: model.RegistryAvailable},
	), nil)

	wedding, err := svc.Delete(context.Background(), "w1", "Stand Mixer")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(wedding.Registry) != 1 || wedding.Registry[0].Name != "Dutch Oven" {
		t.Errorf("expected only Dutch Oven left, got %+v", wedding.Registry)
	}
}

func TestGetRegistryItem_UnknownName_ReturnsErrRegistryItemNotFound(t *testing.T) {
	t.Parallel()
	svc := registryServiceWith(testWedding(), nil)

	_, err := svc.Get(context.Background(), "w1", "Stand Mixer")

	if err != ErrRegistryItemNotFound {
		t.Errorf("expected ErrRegistryItemNotFound, got %v", err)
	}
}
