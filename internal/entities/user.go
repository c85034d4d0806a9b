package entities

import (
	"strings"
	"time"
)

// Profile enumerates the console perspective granted to a user.
type Profile string

const (
	// ProfileAdministrador grants the administrator view.
	ProfileAdministrador Profile = "Administrador"
	// ProfileEditor grants the editor view.
	ProfileEditor Profile = "Editor"
	// ProfileViewer grants the read-only view.
	ProfileViewer Profile = "Viewer"
	// ProfileModerador grants the moderator view.
	ProfileModerador Profile = "Moderador"
)

// Profiles lists every valid profile in display order.
var Profiles = []Profile{ProfileAdministrador, ProfileEditor, ProfileViewer, ProfileModerador}

// Valid reports whether p is one of the listed profiles.
func (p Profile) Valid() bool {
	for _, v := range Profiles {
		if p == v {
			return true
		}
	}
	return false
}

// Status enumerates user lifecycle tags.
type Status string

const (
	// StatusActivo marks an active user.
	StatusActivo Status = "Activo"
	// StatusInactivo marks a disabled user.
	StatusInactivo Status = "Inactivo"
	// StatusPendiente marks a user awaiting activation.
	StatusPendiente Status = "Pendiente"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusActivo, StatusInactivo, StatusPendiente}

// Valid reports whether s is one of the listed statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// User is a domain representation of a console user record.
// JSON names follow the console wire format and are used for session persistence.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"nombreCompleto"`
	NIT       string    `json:"nit"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	Profile   Profile   `json:"perfil"`
	Status    Status    `json:"estado"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

// EmailMatches compares the user email with email ignoring case.
func (u User) EmailMatches(email string) bool {
	return strings.EqualFold(u.Email, email)
}
