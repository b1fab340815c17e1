package model

// RegistryItemStatus tracks whether a gift has been bought.
type RegistryItemStatus string

const (
	RegistryAvailable RegistryItemStatus = "available"
	RegistryPurchased RegistryItemStatus = "purchased"
)

// IsValid reports whether the status is a known registry status.
func (s RegistryItemStatus) IsValid() bool {
	return s == RegistryAvailable || s == RegistryPurchased
}

// RegistryItem lives inside a wedding's gift registry. Name is the key, not
// a generated id, so near-duplicate names are distinct items and exact
// duplicates are rejected at add time.
type RegistryItem struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       uint64             `json:"price"`
	Status      RegistryItemStatus `json:"status"`
	PurchasedBy string             `json:"purchased_by"`
}

// AddRegistryItemRequest is the payload for
// POST /v1/weddings/{weddingId}/registry.
type AddRegistryItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       uint64 `json:"price"`
}

// UpdateRegistryItemRequest is the payload for
// PATCH /v1/weddings/{weddingId}/registry/{itemName}.
type UpdateRegistryItemRequest struct {
	Status      RegistryItemStatus `json:"status"`
	PurchasedBy string             `json:"purchased_by,omitempty"`
}
