package db

import "Gin_redis_lending_tracker/models"

// SeedUsers returns the sample borrowers used on first start and by "reset".
func SeedUsers() []models.User {
	return []models.User{
		{ID: NewID(), FullName: "Jetril Charoenthong", StudentID: "6706022510425", Phone: "09xxxxxxxx"},
		{ID: NewID(), FullName: "Thanapat Ninkuha", StudentID: "6706022510441", Phone: "09xxxxxxxx"},
		{ID: NewID(), FullName: "Bowon Limprasert", StudentID: "6706022510450", Phone: "09xxxxxxxx"},
		{ID: NewID(), FullName: "Chanathip Jurutiap", StudentID: "6706022510468", Phone: "09xxxxxxxx"},
	}
}

func SeedEquipment() []models.Equipment {
	return []models.Equipment{
		{ID: NewID(), Name: "Router", Category: "Network", Quantity: 5, Status: models.EquipmentAvailable},
		{ID: NewID(), Name: "Switch", Category: "Network", Quantity: 8, Status: models.EquipmentAvailable},
		{ID: NewID(), Name: "LAN Cable", Category: "Accessory", Quantity: 50, Status: models.EquipmentAvailable},
		{ID: NewID(), Name: "Notebook", Category: "IT", Quantity: 3, Status: models.EquipmentMaintenance},
	}
}
