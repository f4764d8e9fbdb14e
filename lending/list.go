package lending

import (
	"strings"

	"Gin_redis_lending_tracker/models"
)

// StatusAll disables the status filter.
const StatusAll = "ALL"

type EquipmentFilter struct {
	Q      string `form:"q"`
	Status string `form:"status"`
}

type BorrowFilter struct {
	Q      string `form:"q"`
	Status string `form:"status"`
}

func normalize(q string) string { return strings.ToLower(strings.TrimSpace(q)) }

func (e *Engine) ListUsers(q string) []models.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	q = normalize(q)
	out := []models.User{}
	for _, u := range e.repo.Users.ListAll() {
		if u.Matches(q) {
			out = append(out, u)
		}
	}
	return out
}

func (e *Engine) ListEquipment(f EquipmentFilter) ([]models.Equipment, error) {
	status := strings.ToUpper(strings.TrimSpace(f.Status))
	if status != "" && status != StatusAll && !models.EquipmentStatus(status).Valid() {
		return nil, e.reject(models.Invalid(models.CodeInvalidStatus, "status", "unknown equipment status %q", f.Status))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	q := normalize(f.Q)
	out := []models.Equipment{}
	for _, eq := range e.repo.Equipment.ListAll() {
		if status != "" && status != StatusAll && string(eq.Status) != status {
			continue
		}
		if eq.Matches(q) {
			out = append(out, eq)
		}
	}
	return out, nil
}

// AvailableEquipment lists what can go into a cart right now.
func (e *Engine) AvailableEquipment() []models.Equipment {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := []models.Equipment{}
	for _, eq := range e.repo.Equipment.ListAll() {
		if eq.Borrowable() {
			out = append(out, eq)
		}
	}
	return out
}

// ListBorrows filters by status and by text over the borrower name, the
// borrow id and the names of the borrowed equipment.
func (e *Engine) ListBorrows(f BorrowFilter) ([]models.Borrow, error) {
	status := strings.ToUpper(strings.TrimSpace(f.Status))
	switch models.BorrowStatus(status) {
	case "", StatusAll, models.BorrowBorrowed, models.BorrowReturned:
	default:
		return nil, e.reject(models.Invalid(models.CodeInvalidStatus, "status", "unknown borrow status %q", f.Status))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	q := normalize(f.Q)
	out := []models.Borrow{}
	for _, b := range e.repo.Borrows.ListAll() {
		if status != "" && status != StatusAll && string(b.Status) != status {
			continue
		}
		if q == "" || e.borrowMatches(b, q) {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

func (e *Engine) borrowMatches(b models.Borrow, q string) bool {
	if strings.Contains(strings.ToLower(b.ID), q) {
		return true
	}
	if u, ok := e.repo.Users.Get(b.UserID); ok && strings.Contains(strings.ToLower(u.FullName), q) {
		return true
	}
	for _, d := range b.Details {
		if eq, ok := e.repo.Equipment.Get(d.EquipmentID); ok && strings.Contains(strings.ToLower(eq.Name), q) {
			return true
		}
	}
	return false
}

// Snapshot copies the three collections for read-only consumers such as reports.
func (e *Engine) Snapshot() (users []models.User, equipment []models.Equipment, borrows []models.Borrow) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.repo.Users.ListAll(), e.repo.Equipment.ListAll(), e.repo.Borrows.ListAll()
}

func (e *Engine) Today() string { return e.today() }
