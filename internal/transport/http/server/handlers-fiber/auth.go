package handlers_fiber

import (
	"net/http"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/mapper"
	"github.com/Yosipmikecolin/app-web-wesense/internal/seed"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/dto"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/middleware"
	"github.com/Yosipmikecolin/app-web-wesense/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// demoPassword is shown on the login page; passwords are never checked.
const demoPassword = "admin123"

// GetLogin reports the session state and the demo credentials.
func (h *Handler) GetLogin(c *fiber.Ctx) error {
	resp := mapper.ToDTOSession(middleware.Session(c).Snapshot())
	resp.Demo = &dto.Credentials{Email: seed.FallbackEmail, Password: demoPassword}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostLogin authenticates the browser context by email.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body", nil))
	}
	if err := validation.Struct(validation.Login{Email: body.Email, Password: body.Password}); err != nil {
		return writeError(c, err)
	}

	st := middleware.Session(c)
	ok, err := st.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("login error", "error", err.Error())
		return writeError(c, err)
	}
	if !ok {
		return writeError(c, entities.ErrLoginFailed)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOSession(st.Snapshot()))
}

// PostLogout clears the session of the browser context.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	middleware.Session(c).Logout(c.UserContext())
	h.sessions.Forget(middleware.ContextID(c))
	return c.SendStatus(http.StatusNoContent)
}

// GetSession returns the current session user.
func (h *Handler) GetSession(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSession(middleware.Session(c).Snapshot()))
}

// GetPasswordReset is a public placeholder route.
func (h *Handler) GetPasswordReset(c *fiber.Ctx) error {
	return c.Status(http.StatusNotImplemented).JSON(errorResponse(dto.NOTIMPLEMENTED, "password reset is not available", nil))
}
