package report

import (
	"sort"

	"Gin_redis_lending_tracker/models"
)

type TopRow struct {
	EquipmentID   string `json:"equipment_id"`
	EquipmentName string `json:"equipment_name"`
	Category      string `json:"category"`
	Times         int    `json:"times"`
	TotalAmount   int    `json:"total_amount"`
}

// TopBorrowed ranks equipment by total borrowed amount. Times counts borrows,
// so a borrow adds at most one to it however many lines it has for the same
// equipment; TotalAmount adds every line. Ties keep first-seen order.
func TopBorrowed(borrows []models.Borrow, equipment []models.Equipment, n int) []TopRow {
	if n <= 0 {
		return []TopRow{}
	}
	var rows []TopRow
	idx := map[string]int{}
	for _, b := range borrows {
		seen := map[string]bool{}
		for _, d := range b.Details {
			i, ok := idx[d.EquipmentID]
			if !ok {
				i = len(rows)
				idx[d.EquipmentID] = i
				rows = append(rows, TopRow{EquipmentID: d.EquipmentID})
			}
			rows[i].TotalAmount += d.Amount
			if !seen[d.EquipmentID] {
				rows[i].Times++
				seen[d.EquipmentID] = true
			}
		}
	}

	byID := make(map[string]models.Equipment, len(equipment))
	for _, e := range equipment {
		byID[e.ID] = e
	}
	for i := range rows {
		rows[i].EquipmentName, rows[i].Category = "Unknown", "-"
		if e, ok := byID[rows[i].EquipmentID]; ok {
			rows[i].EquipmentName, rows[i].Category = e.Name, e.Category
		}
	}

	sort.SliceStable(rows, func(a, b int) bool { return rows[a].TotalAmount > rows[b].TotalAmount })
	if len(rows) > n {
		rows = rows[:n]
	}
	if rows == nil {
		rows = []TopRow{}
	}
	return rows
}
