package db

import (
	"context"

	"Gin_redis_lending_tracker/models"
	"Gin_redis_lending_tracker/store"
)

type EquipmentRepo struct {
	*collection[models.Equipment]
}

func LoadEquipment(ctx context.Context, st store.Store, ns store.Namespace, seed bool) (*EquipmentRepo, error) {
	fallback := func() []models.Equipment { return nil }
	if seed {
		fallback = SeedEquipment
	}
	c, err := loadCollection(ctx, st, ns, fallback)
	if err != nil {
		return nil, err
	}
	return &EquipmentRepo{collection: c}, nil
}

// AdjustQuantity adds delta to the stock of id. Missing equipment is ignored.
func (r *EquipmentRepo) AdjustQuantity(id string, delta int) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Quantity += delta
			return true
		}
	}
	return false
}

