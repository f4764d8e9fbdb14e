package lending

import (
	"context"
	"log/slog"

	"Gin_redis_lending_tracker/db"
	"Gin_redis_lending_tracker/models"
)

type UserInput struct {
	FullName  string `json:"full_name"`
	StudentID string `json:"student_id"`
	Phone     string `json:"phone"`
}

type EquipmentInput struct {
	Name     string                 `json:"equipment_name"`
	Category string                 `json:"category"`
	Quantity int                    `json:"quantity"`
	Status   models.EquipmentStatus `json:"status"`
}

func (e *Engine) CreateUser(ctx context.Context, in UserInput) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	u, err := e.checkUser("", in)
	if err != nil {
		return models.User{}, e.reject(err)
	}
	u.ID = e.newID()
	e.repo.Users.Upsert(u)
	if err := e.save(ctx, e.repo.Users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (e *Engine) UpdateUser(ctx context.Context, id string, in UserInput) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.repo.Users.Get(id); !ok {
		return models.User{}, models.NotFound("user", id)
	}
	u, err := e.checkUser(id, in)
	if err != nil {
		return models.User{}, e.reject(err)
	}
	u.ID = id
	e.repo.Users.Upsert(u)
	if err := e.save(ctx, e.repo.Users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (e *Engine) checkUser(id string, in UserInput) (models.User, error) {
	u, err := models.NewUser(in.FullName, in.StudentID, in.Phone)
	if err != nil {
		return models.User{}, err
	}
	if e.repo.Users.StudentIDTaken(u.StudentID, id) {
		return models.User{}, models.Invalid(models.CodeDuplicate, "student_id", "student id %s already exists", u.StudentID)
	}
	return u, nil
}

// DeleteUser removes the user even when borrows still reference it; those
// borrows keep the dangling user id.
func (e *Engine) DeleteUser(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.repo.Users.RemoveByID(id) {
		return models.NotFound("user", id)
	}
	if err := e.save(ctx, e.repo.Users); err != nil {
		return err
	}
	if refs := e.repo.Borrows.ReferencingUser(id); len(refs) > 0 {
		e.log.Info("user deleted with borrows on record", slog.String("user_id", id), slog.Int("borrows", len(refs)))
	}
	return nil
}

func (e *Engine) CreateEquipment(ctx context.Context, in EquipmentInput) (models.Equipment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	eq, err := models.NewEquipment(in.Name, in.Category, in.Quantity, in.Status)
	if err != nil {
		return models.Equipment{}, e.reject(err)
	}
	eq.ID = e.newID()
	e.repo.Equipment.Upsert(eq)
	if err := e.save(ctx, e.repo.Equipment); err != nil {
		return models.Equipment{}, err
	}
	return eq, nil
}

// UpdateEquipment is the administrative edit: quantity is taken as given and
// is not reconciled with outstanding borrows.
func (e *Engine) UpdateEquipment(ctx context.Context, id string, in EquipmentInput) (models.Equipment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.repo.Equipment.Get(id); !ok {
		return models.Equipment{}, models.NotFound("equipment", id)
	}
	eq, err := models.NewEquipment(in.Name, in.Category, in.Quantity, in.Status)
	if err != nil {
		return models.Equipment{}, e.reject(err)
	}
	eq.ID = id
	e.repo.Equipment.Upsert(eq)
	if err := e.save(ctx, e.repo.Equipment); err != nil {
		return models.Equipment{}, err
	}
	return eq, nil
}

func (e *Engine) DeleteEquipment(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.repo.Equipment.RemoveByID(id) {
		return models.NotFound("equipment", id)
	}
	return e.save(ctx, e.repo.Equipment)
}

// ResetUsers replaces every user with the sample set.
func (e *Engine) ResetUsers(ctx context.Context) ([]models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.repo.Users.Replace(db.SeedUsers())
	if err := e.save(ctx, e.repo.Users); err != nil {
		return nil, err
	}
	return e.repo.Users.ListAll(), nil
}

// ResetEquipment replaces the inventory with the sample set. Borrows are left alone.
func (e *Engine) ResetEquipment(ctx context.Context) ([]models.Equipment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.repo.Equipment.Replace(db.SeedEquipment())
	if err := e.save(ctx, e.repo.Equipment); err != nil {
		return nil, err
	}
	return e.repo.Equipment.ListAll(), nil
}
