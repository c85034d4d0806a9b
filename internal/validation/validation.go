// Package validation holds the input rules of the console forms and their
// user-facing messages. One validator instance serves every caller.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"

	"github.com/go-playground/validator/v10"
)

var (
	digitsRe = regexp.MustCompile(`^\d+$`)
	phoneRe  = regexp.MustCompile(`^\+?[\d\s\-()]{8,15}$`)

	std = newValidator()
)

// UserForm mirrors the create/edit form of the console.
type UserForm struct {
	FullName string `json:"name" validate:"required,min=2,max=100"`
	NIT      string `json:"nit" validate:"required,digits,min=8,max=12"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" validate:"required,phone"`
	Profile  string `json:"profile" validate:"required,profile"`
	Status   string `json:"status" validate:"required,status"`
}

// Login mirrors the login form.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// messages maps form, field and failed tag to the text shown next to the field.
var messages = map[string]map[string]map[string]string{
	"UserForm": {
		"name": {
			"required": "El nombre completo es requerido",
			"min":      "El nombre debe tener al menos 2 caracteres",
			"max":      "El nombre no puede exceder 100 caracteres",
		},
		"nit": {
			"required": "El NIT es requerido",
			"digits":   "El NIT debe tener entre 8 y 12 dígitos",
			"min":      "El NIT debe tener entre 8 y 12 dígitos",
			"max":      "El NIT debe tener entre 8 y 12 dígitos",
		},
		"email": {
			"required": "El email es requerido",
			"email":    "El email no tiene un formato válido",
			"max":      "El email no puede exceder 100 caracteres",
		},
		"phone": {
			"required": "El teléfono es requerido",
			"phone":    "El teléfono no tiene un formato válido",
		},
		"profile": {
			"required": "Debe seleccionar un perfil",
			"profile":  "Perfil inválido",
		},
		"status": {
			"required": "Debe seleccionar un estado",
			"status":   "Estado inválido",
		},
	},
	"Login": {
		"email": {
			"required": "Ingrese un correo electrónico válido",
			"email":    "Ingrese un correo electrónico válido",
		},
		"password": {
			"required": "La contraseña es requerida",
		},
	},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
		return entities.Profile(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return entities.Status(fl.Field().String()).Valid()
	})
	return v
}

// Struct validates form and returns an *entities.ValidationError holding the
// first failed rule of every invalid field.
func Struct(form interface{}) error {
	err := std.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		formName, _, _ := strings.Cut(fe.Namespace(), ".")
		msg, ok := messages[formName][fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		fields[fe.Field()] = msg
	}
	return &entities.ValidationError{Fields: fields}
}
