package models

import (
	"time"
)

const BorrowsKey = "borrows"

// DateLayout is the only accepted date format. Lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

type BorrowStatus string

const (
	BorrowBorrowed BorrowStatus = "BORROWED"
	BorrowReturned BorrowStatus = "RETURNED"
)

type Borrow struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	BorrowDate string         `json:"borrow_date"`
	DueDate    string         `json:"due_date"`
	Status     BorrowStatus   `json:"borrow_status"`
	Details    []BorrowDetail `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

// BorrowDetail is one equipment line of a borrow. Amount is fixed at creation;
// ReturnedAmount only grows and never exceeds Amount.
type BorrowDetail struct {
	ID             string `json:"id"`
	BorrowID       string `json:"borrow_id"`
	EquipmentID    string `json:"equipment_id"`
	Amount         int    `json:"amount"`
	ReturnedAmount int    `json:"returned_amount"`
}

func (Borrow) StoreKey() string { return BorrowsKey }

func (b Borrow) GetID() string { return b.ID }

func (d BorrowDetail) Remaining() int {
	if r := d.Amount - d.ReturnedAmount; r > 0 {
		return r
	}
	return 0
}

// FullyReturned is true iff every line is complete.
func (b Borrow) FullyReturned() bool {
	for _, d := range b.Details {
		if d.ReturnedAmount != d.Amount {
			return false
		}
	}
	return true
}

// Outstanding sums what is still out across all lines.
func (b Borrow) Outstanding() int {
	n := 0
	for _, d := range b.Details {
		n += d.Remaining()
	}
	return n
}

func (b Borrow) Detail(equipmentID string) (BorrowDetail, bool) {
	for _, d := range b.Details {
		if d.EquipmentID == equipmentID {
			return d, true
		}
	}
	return BorrowDetail{}, false
}

// Clone copies the details slice so callers can mutate lines without touching the original.
func (b Borrow) Clone() Borrow {
	c := b
	c.Details = append([]BorrowDetail(nil), b.Details...)
	return c
}

// ParseDate validates an ISO YYYY-MM-DD date string.
func ParseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, Invalid(CodeMissingField, field, "%s is required", field)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, Invalid(CodeInvalidDate, field, "%s must be YYYY-MM-DD, got %q", field, s)
	}
	return t, nil
}
