package models

import "strings"

const EquipmentKey = "equipment"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentDisposed    EquipmentStatus = "DISPOSED"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentMaintenance, EquipmentDisposed:
		return true
	}
	return false
}

// Equipment is one inventory line. Quantity is what is on the shelf right now,
// already net of outstanding loans.
type Equipment struct {
	ID       string          `json:"id"`
	Name     string          `json:"equipment_name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Status   EquipmentStatus `json:"status"`
}

func (Equipment) StoreKey() string { return EquipmentKey }

func (e Equipment) GetID() string { return e.ID }

func NewEquipment(name, category string, quantity int, status EquipmentStatus) (Equipment, error) {
	e := Equipment{
		Name:     strings.TrimSpace(name),
		Category: strings.TrimSpace(category),
		Quantity: quantity,
		Status:   status,
	}
	if e.Status == "" {
		e.Status = EquipmentAvailable
	}
	if e.Name == "" {
		return Equipment{}, Invalid(CodeMissingField, "equipment_name", "equipment name is required")
	}
	if e.Category == "" {
		return Equipment{}, Invalid(CodeMissingField, "category", "category is required")
	}
	if e.Quantity < 0 {
		return Equipment{}, Invalid(CodeInvalidQuantity, "quantity", "quantity must not be negative")
	}
	if !e.Status.Valid() {
		return Equipment{}, Invalid(CodeInvalidStatus, "status", "unknown equipment status %q", e.Status)
	}
	return e, nil
}

// Borrowable: AVAILABLE and something left on the shelf.
func (e Equipment) Borrowable() bool {
	return e.Status == EquipmentAvailable && e.Quantity > 0
}

func (e Equipment) Matches(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Category), q)
}
