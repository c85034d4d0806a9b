package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})
	return app
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"not found", entities.ErrUserNotFound, http.StatusNotFound, dto.NOTFOUND, "resource not found"},
		{"wrapped not found", fmt.Errorf("get user: %w", entities.ErrUserNotFound), http.StatusNotFound, dto.NOTFOUND, "resource not found"},
		{"user exists", entities.ErrUserExists, http.StatusConflict, dto.USEREXISTS, "Ya existe un usuario con el mismo email"},
		{"login failed", entities.ErrLoginFailed, http.StatusUnauthorized, dto.LOGINFAILED, "Credenciales incorrectas. Intente de nuevo."},
		{"login in progress", entities.ErrLoginInProgress, http.StatusConflict, dto.LOGININPROGRESS, "login already in progress"},
		{"invalid argument", fmt.Errorf("%w: page_size", entities.ErrInvalidArgument), http.StatusBadRequest, dto.INVALIDARGUMENT, "invalid argument: page_size"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.INTERNAL, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := errorApp(tc.err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tc.code, body.Error.Code)
			require.Equal(t, tc.message, body.Error.Message)
			require.Empty(t, body.Error.Fields)
		})
	}
}

func TestWriteErrorValidationFields(t *testing.T) {
	verr := &entities.ValidationError{Fields: map[string]string{"nit": "El NIT es requerido"}}

	resp, err := errorApp(verr).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, dto.INVALIDARGUMENT, body.Error.Code)
	require.Equal(t, "El NIT es requerido", body.Error.Fields["nit"])
}
