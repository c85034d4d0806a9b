package middleware

import (
	"github.com/Yosipmikecolin/app-web-wesense/internal/gate"
	"github.com/Yosipmikecolin/app-web-wesense/internal/session"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionKey  = "session"
	decisionKey = "gate_decision"
)

// Gate attaches the session store of the browser context and applies the
// gate decision: protected routes redirect to loginRoute without a session
// and answer 503 while the session is still settling.
func Gate(reg *session.Registry, cls *gate.Classifier, loginRoute string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := reg.Get(c.UserContext(), ContextID(c))
		c.Locals(sessionKey, st)

		d := gate.Resolve(st.State(), cls.Classify(c.Path()))
		c.Locals(decisionKey, d.Action.String())

		switch d.Action {
		case gate.Redirect:
			return c.Redirect(loginRoute, fiber.StatusFound)
		case gate.Loading:
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "loading"})
		}
		return c.Next()
	}
}

// Session returns the store attached by Gate.
func Session(c *fiber.Ctx) *session.Store {
	st, _ := c.Locals(sessionKey).(*session.Store)
	return st
}
