package lending

import "Gin_redis_lending_tracker/models"

type CartLine struct {
	EquipmentID string `json:"equipment_id"`
	Amount      int    `json:"amount"`
}

// Cart is the pending list of equipment for one borrow. It holds at most one
// line per equipment id.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

func (c *Cart) find(equipmentID string) int {
	for i, l := range c.Lines {
		if l.EquipmentID == equipmentID {
			return i
		}
	}
	return -1
}

// Add puts amount units of eq in the cart. A second add of the same equipment
// raises the pending amount, but only while the total still fits the current
// quantity; otherwise the cart is left untouched and Add returns false.
func (c *Cart) Add(eq models.Equipment, amount int) (bool, error) {
	if amount <= 0 {
		return false, models.Invalid(models.CodeInvalidQuantity, eq.ID, "amount must be greater than 0")
	}
	if eq.Status != models.EquipmentAvailable {
		return false, models.Invalid(models.CodeUnavailable, eq.ID, "%s is not available", eq.Name)
	}
	if amount > eq.Quantity {
		return false, models.Invalid(models.CodeInsufficientStock, eq.ID, "not enough %s (%d left)", eq.Name, eq.Quantity)
	}
	if i := c.find(eq.ID); i >= 0 {
		total := c.Lines[i].Amount + amount
		if total > eq.Quantity {
			return false, nil
		}
		c.Lines[i].Amount = total
		return true, nil
	}
	c.Lines = append(c.Lines, CartLine{EquipmentID: eq.ID, Amount: amount})
	return true, nil
}

// SetAmount overwrites the pending amount of an existing line, clipped to the
// current quantity. Non-positive requests and unknown lines are ignored.
func (c *Cart) SetAmount(eq models.Equipment, requested int) bool {
	if requested <= 0 {
		return false
	}
	i := c.find(eq.ID)
	if i < 0 {
		return false
	}
	c.Lines[i].Amount = min(requested, eq.Quantity)
	return true
}

func (c *Cart) Remove(equipmentID string) bool {
	i := c.find(equipmentID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i:i], c.Lines[i+1:]...)
	return true
}

func (c *Cart) Clear() { c.Lines = nil }

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// mergeLines folds duplicate equipment ids into one line, keeping first-seen order.
func mergeLines(lines []CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	idx := make(map[string]int, len(lines))
	for _, l := range lines {
		if i, ok := idx[l.EquipmentID]; ok {
			out[i].Amount += l.Amount
			continue
		}
		idx[l.EquipmentID] = len(out)
		out = append(out, l)
	}
	return out
}

// AddToCart looks the equipment up in the live inventory and adds it to cart.
func (e *Engine) AddToCart(cart *Cart, equipmentID string, amount int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	eq, ok := e.repo.Equipment.Get(equipmentID)
	if !ok {
		return false, models.NotFound("equipment", equipmentID)
	}
	added, err := cart.Add(eq, amount)
	if err != nil {
		return false, e.reject(err)
	}
	return added, nil
}

// SetCartAmount edits a cart line against the live inventory.
func (e *Engine) SetCartAmount(cart *Cart, equipmentID string, amount int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	eq, ok := e.repo.Equipment.Get(equipmentID)
	if !ok {
		return false, models.NotFound("equipment", equipmentID)
	}
	return cart.SetAmount(eq, amount), nil
}
