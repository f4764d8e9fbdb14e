package db

import (
	"context"

	"Gin_redis_lending_tracker/models"
	"Gin_redis_lending_tracker/store"
)

// BorrowRepo keeps borrows newest first.
type BorrowRepo struct {
	*collection[models.Borrow]
}

func LoadBorrows(ctx context.Context, st store.Store, ns store.Namespace) (*BorrowRepo, error) {
	c, err := loadCollection(ctx, st, ns, func() []models.Borrow { return nil })
	if err != nil {
		return nil, err
	}
	return &BorrowRepo{collection: c}, nil
}


// ReferencingUser lists borrows still pointing at userID.
func (r *BorrowRepo) ReferencingUser(userID string) []models.Borrow {
	var out []models.Borrow
	for _, b := range r.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}
