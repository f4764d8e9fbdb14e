package db

import (
	"context"

	"Gin_redis_lending_tracker/models"
	"Gin_redis_lending_tracker/store"
)

type UserRepo struct {
	*collection[models.User]
}

func LoadUsers(ctx context.Context, st store.Store, ns store.Namespace, seed bool) (*UserRepo, error) {
	fallback := func() []models.User { return nil }
	if seed {
		fallback = SeedUsers
	}
	c, err := loadCollection(ctx, st, ns, fallback)
	if err != nil {
		return nil, err
	}
	return &UserRepo{collection: c}, nil
}

// StudentIDTaken reports whether another user (not exceptID) already holds studentID.
func (r *UserRepo) StudentIDTaken(studentID, exceptID string) bool {
	for _, u := range r.items {
		if u.StudentID == studentID && u.ID != exceptID {
			return true
		}
	}
	return false
}
