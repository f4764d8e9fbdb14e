package lending

import (
	"context"
	"log/slog"
	"sort"

	"Gin_redis_lending_tracker/models"
)

// OpenReturnSession prefills a return with everything still outstanding,
// keyed by equipment id.
func (e *Engine) OpenReturnSession(borrowID string) (map[string]int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.repo.Borrows.Get(borrowID)
	if !ok {
		return nil, models.NotFound("borrow", borrowID)
	}
	prefill := make(map[string]int, len(b.Details))
	for _, d := range b.Details {
		prefill[d.EquipmentID] = d.Remaining()
	}
	return prefill, nil
}

// ApplyReturn hands back returns[equipmentID] units per line. Lines absent
// from returns get nothing. If any line would go over what is outstanding the
// whole return is refused.
func (e *Engine) ApplyReturn(ctx context.Context, borrowID string, returns map[string]int) (models.Borrow, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.repo.Borrows.Get(borrowID)
	if !ok {
		return models.Borrow{}, models.NotFound("borrow", borrowID)
	}
	if err := e.validateReturn(cur, returns); err != nil {
		return models.Borrow{}, e.reject(err)
	}

	b := cur.Clone()
	units := 0
	for i := range b.Details {
		b.Details[i].ReturnedAmount += returns[b.Details[i].EquipmentID]
	}
	if b.FullyReturned() {
		b.Status = models.BorrowReturned
	} else {
		b.Status = models.BorrowBorrowed
	}
	for eqID, n := range returns {
		if n <= 0 {
			continue
		}
		units += n
		// equipment deleted since the borrow: the units go nowhere
		e.repo.Equipment.AdjustQuantity(eqID, n)
	}
	e.repo.Borrows.Upsert(b)

	if err := e.save(ctx, e.repo.Borrows, e.repo.Equipment); err != nil {
		return models.Borrow{}, err
	}
	e.rec.ItemsReturned(units)
	e.log.Info("borrow returned",
		slog.String("borrow_id", b.ID),
		slog.Int("units", units),
		slog.String("status", string(b.Status)),
	)
	return b.Clone(), nil
}

func (e *Engine) validateReturn(b models.Borrow, returns map[string]int) error {
	ids := make([]string, 0, len(returns))
	for eqID := range returns {
		ids = append(ids, eqID)
	}
	sort.Strings(ids)
	for _, eqID := range ids {
		n := returns[eqID]
		if n < 0 {
			return models.Invalid(models.CodeInvalidQuantity, eqID, "return amount must not be negative")
		}
		if _, ok := b.Detail(eqID); !ok && n > 0 {
			return models.Invalid(models.CodeUnknownLine, eqID, "equipment %s is not part of this borrow", eqID)
		}
	}
	for _, d := range b.Details {
		if returns[d.EquipmentID] > d.Remaining() {
			return models.Invalid(models.CodeOverReturn, d.EquipmentID,
				"returning more %s than is outstanding (%d left)", e.equipmentName(d.EquipmentID), d.Remaining())
		}
	}
	return nil
}

func (e *Engine) equipmentName(id string) string {
	if eq, ok := e.repo.Equipment.Get(id); ok {
		return eq.Name
	}
	return "Unknown"
}
