package repository

import (
	"context"
	"errors"

	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/model"
)

// WeddingRepository handles wedding aggregate storage
type WeddingRepository struct {
	db database.Database
}

// NewWeddingRepository creates a new wedding repository
func NewWeddingRepository(db database.Database) *WeddingRepository {
	return &WeddingRepository{db: db}
}

// Get retrieves a wedding aggregate by id. Returns (nil, nil) when absent.
func (r *WeddingRepository) Get(ctx context.Context, id string) (*model.Wedding, error) {
	query := `SELECT * FROM type::thing('wedding', $id)`
	vars := map[string]interface{}{"id": id}

	row, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return decodeWedding(row)
}

// Upsert writes the whole wedding aggregate, replacing any existing record.
func (r *WeddingRepository) Upsert(ctx context.Context, wedding *model.Wedding) error {
	query, vars, err := weddingUpsert(wedding)
	if err != nil {
		return err
	}
	return r.db.Execute(ctx, query, vars)
}

// List retrieves all wedding aggregates. Order is not significant.
func (r *WeddingRepository) List(ctx context.Context) ([]*model.Wedding, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM wedding`, nil)
	if err != nil {
		return nil, err
	}

	weddings := make([]*model.Wedding, 0, len(rows))
	for _, row := range rows {
		w, err := decodeWedding(row)
		if err != nil {
			return nil, err
		}
		weddings = append(weddings, w)
	}
	return weddings, nil
}

func weddingUpsert(wedding *model.Wedding) (string, map[string]interface{}, error) {
	content, err := contentFor(wedding)
	if err != nil {
		return "", nil, err
	}
	query := `UPSERT type::thing('wedding', $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   wedding.ID,
		"data": content,
	}
	return query, vars, nil
}

func decodeWedding(row interface{}) (*model.Wedding, error) {
	var wedding model.Wedding
	key, err := decodeRow(row, &wedding)
	if err != nil {
		return nil, err
	}
	wedding.ID = key
	return &wedding, nil
}
