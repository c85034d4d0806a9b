package domain

import (
	"strings"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/validation"

	"github.com/google/uuid"
)

var nitStrip = strings.NewReplacer("-", "", " ", "")

// normalizeUser trims text fields and strips separators from the NIT.
func normalizeUser(u entities.User) entities.User {
	u.ID = strings.TrimSpace(u.ID)
	u.FullName = strings.TrimSpace(u.FullName)
	u.NIT = nitStrip.Replace(strings.TrimSpace(u.NIT))
	u.Email = strings.TrimSpace(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
	return u
}

func validateUser(user entities.User) error {
	return validation.Struct(validation.UserForm{
		FullName: user.FullName,
		NIT:      user.NIT,
		Email:    user.Email,
		Phone:    user.Phone,
		Profile:  string(user.Profile),
		Status:   string(user.Status),
	})
}

func newUserID() string {
	return uuid.NewString()
}
