// Package seed holds the built-in user collection loaded at startup.
package seed

import (
	"time"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
)

// FallbackEmail logs in as Fallback() even when no record carries it.
const FallbackEmail = "admin@sistema.com"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

// Users returns a fresh copy of the seed collection.
func Users() []entities.User {
	return []entities.User{
		{ID: "1", FullName: "Carlos Alberto Mendoza", NIT: "12345678", Email: "carlos.mendoza@empresa.com", Phone: "+502 5555-1234", Profile: entities.ProfileAdministrador, Status: entities.StatusActivo, CreatedAt: day(2024, time.January, 15)},
		{ID: "2", FullName: "María Fernanda García", NIT: "23456789", Email: "maria.garcia@empresa.com", Phone: "+502 5555-2345", Profile: entities.ProfileEditor, Status: entities.StatusActivo, CreatedAt: day(2024, time.February, 3)},
		{ID: "3", FullName: "José Luis Ramírez", NIT: "34567890", Email: "jose.ramirez@empresa.com", Phone: "+502 5555-3456", Profile: entities.ProfileViewer, Status: entities.StatusInactivo, CreatedAt: day(2024, time.February, 20)},
		{ID: "4", FullName: "Ana Lucía Herrera", NIT: "45678901", Email: "ana.herrera@empresa.com", Phone: "+502 5555-4567", Profile: entities.ProfileModerador, Status: entities.StatusPendiente, CreatedAt: day(2024, time.March, 8)},
		{ID: "5", FullName: "Roberto García López", NIT: "56789012", Email: "roberto.lopez@empresa.com", Phone: "+502 5555-5678", Profile: entities.ProfileEditor, Status: entities.StatusInactivo, CreatedAt: day(2024, time.March, 22)},
		{ID: "6", FullName: "Sofía Isabel Castillo", NIT: "67890123", Email: "sofia.castillo@empresa.com", Phone: "+502 5555-6789", Profile: entities.ProfileViewer, Status: entities.StatusActivo, CreatedAt: day(2024, time.April, 5)},
		{ID: "7", FullName: "Diego Alejandro Morales", NIT: "78901234", Email: "diego.morales@empresa.com", Phone: "+502 5555-7890", Profile: entities.ProfileAdministrador, Status: entities.StatusActivo, CreatedAt: day(2024, time.April, 18)},
		{ID: "8", FullName: "Lucía Garcia Pérez", NIT: "89012345", Email: "lucia.perez@empresa.com", Phone: "+502 5555-8901", Profile: entities.ProfileModerador, Status: entities.StatusActivo, CreatedAt: day(2024, time.May, 2)},
		{ID: "9", FullName: "Fernando José Estrada", NIT: "90123456", Email: "fernando.estrada@empresa.com", Phone: "+502 5555-9012", Profile: entities.ProfileViewer, Status: entities.StatusPendiente, CreatedAt: day(2024, time.May, 27)},
		{ID: "10", FullName: "Gabriela Alejandra Ruiz", NIT: "10234567", Email: "gabriela.ruiz@empresa.com", Phone: "+502 5555-0123", Profile: entities.ProfileEditor, Status: entities.StatusActivo, CreatedAt: day(2024, time.June, 11)},
	}
}

// Fallback is the identity granted to FallbackEmail. It does not depend on
// the live collection, so deleting user 1 does not change it.
func Fallback() entities.User {
	return Users()[0]
}
