package lending

import (
	"context"
	"log/slog"
	"strings"

	"Gin_redis_lending_tracker/models"
)

type BorrowRequest struct {
	UserID     string     `json:"user_id"`
	BorrowDate string     `json:"borrow_date"`
	DueDate    string     `json:"due_date"`
	Items      []CartLine `json:"items"`
}

// DefaultDates fills a missing borrow date with today and a missing due date
// with two days after the borrow date.
func (e *Engine) DefaultDates(req *BorrowRequest) {
	if req.BorrowDate == "" && req.DueDate == "" {
		now := e.now()
		req.BorrowDate = now.Format(models.DateLayout)
		req.DueDate = now.AddDate(0, 0, 2).Format(models.DateLayout)
	}
}

// CreateBorrow checks the request against the live users and inventory, then
// takes the stock off the shelf and records the borrow. The first failing
// check is returned and nothing is changed.
func (e *Engine) CreateBorrow(ctx context.Context, req BorrowRequest) (models.Borrow, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	lines, err := e.validateBorrow(req)
	if err != nil {
		return models.Borrow{}, e.reject(err)
	}

	b := models.Borrow{
		ID:         e.newID(),
		UserID:     req.UserID,
		BorrowDate: req.BorrowDate,
		DueDate:    req.DueDate,
		Status:     models.BorrowBorrowed,
		Details:    make([]models.BorrowDetail, 0, len(lines)),
		CreatedAt:  e.now().UTC(),
	}
	for _, l := range lines {
		b.Details = append(b.Details, models.BorrowDetail{
			ID:          e.newID(),
			BorrowID:    b.ID,
			EquipmentID: l.EquipmentID,
			Amount:      l.Amount,
		})
		e.repo.Equipment.AdjustQuantity(l.EquipmentID, -l.Amount)
	}
	e.repo.Borrows.Upsert(b)

	if err := e.save(ctx, e.repo.Equipment, e.repo.Borrows); err != nil {
		return models.Borrow{}, err
	}
	e.rec.BorrowCreated(len(b.Details))
	e.log.Info("borrow created",
		slog.String("borrow_id", b.ID),
		slog.String("user_id", b.UserID),
		slog.Int("lines", len(b.Details)),
	)
	return b.Clone(), nil
}

func (e *Engine) validateBorrow(req BorrowRequest) ([]CartLine, error) {
	if e.repo.Users.Len() == 0 {
		return nil, models.Invalid(models.CodeNoUsers, "", "no users yet, add a user first")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, models.Invalid(models.CodeMissingField, "user_id", "choose a borrower")
	}
	if _, err := models.ParseDate("borrow_date", req.BorrowDate); err != nil {
		return nil, err
	}
	if _, err := models.ParseDate("due_date", req.DueDate); err != nil {
		return nil, err
	}
	if _, ok := e.repo.Users.Get(req.UserID); !ok {
		return nil, models.NotFound("user", req.UserID)
	}
	if req.DueDate < req.BorrowDate {
		return nil, models.Invalid(models.CodeDueBeforeBorrow, "due_date", "due date must not be before the borrow date")
	}
	if len(req.Items) == 0 {
		return nil, models.Invalid(models.CodeEmptyCart, "items", "pick at least one item")
	}
	// every submitted line must be positive on its own, before duplicates are folded
	for _, l := range req.Items {
		if l.Amount <= 0 {
			return nil, models.Invalid(models.CodeInvalidQuantity, l.EquipmentID, "amount must be greater than 0")
		}
	}
	lines := mergeLines(req.Items)
	for _, l := range lines {
		eq, ok := e.repo.Equipment.Get(l.EquipmentID)
		if !ok {
			return nil, models.NotFound("equipment", l.EquipmentID)
		}
		if eq.Status != models.EquipmentAvailable {
			return nil, models.Invalid(models.CodeUnavailable, eq.ID, "%s is not available", eq.Name)
		}
		if l.Amount > eq.Quantity {
			return nil, models.Invalid(models.CodeInsufficientStock, eq.ID, "not enough %s (%d left)", eq.Name, eq.Quantity)
		}
	}
	return lines, nil
}

func (e *Engine) GetBorrow(id string) (models.Borrow, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.repo.Borrows.Get(id)
	if !ok {
		return models.Borrow{}, models.NotFound("borrow", id)
	}
	return b.Clone(), nil
}

// DeleteBorrow drops the record whatever its state. Outstanding units are
// NOT put back on the shelf.
func (e *Engine) DeleteBorrow(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.repo.Borrows.RemoveByID(id) {
		return models.NotFound("borrow", id)
	}
	if err := e.save(ctx, e.repo.Borrows); err != nil {
		return err
	}
	e.rec.BorrowDeleted()
	e.log.Info("borrow deleted", slog.String("borrow_id", id))
	return nil
}
