package report

import "Gin_redis_lending_tracker/models"

type Summary struct {
	Users       int `json:"users"`
	Equipment   int `json:"equipment"`
	Borrows     int `json:"borrows"`
	OpenBorrows int `json:"open_borrows"`
	Outstanding int `json:"outstanding_units"`
}

func Summarize(users []models.User, equipment []models.Equipment, borrows []models.Borrow) Summary {
	s := Summary{Users: len(users), Equipment: len(equipment), Borrows: len(borrows)}
	for _, b := range borrows {
		if b.Status == models.BorrowBorrowed {
			s.OpenBorrows++
		}
		s.Outstanding += b.Outstanding()
	}
	return s
}
