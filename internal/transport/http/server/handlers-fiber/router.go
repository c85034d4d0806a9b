package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts every console route on r.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/login", h.GetLogin)
	r.Post("/login", h.PostLogin)
	r.Post("/logout", h.PostLogout)
	r.Get("/password-reset", h.GetPasswordReset)

	r.Get("/session", h.GetSession)

	r.Get("/users", h.GetUsers)
	r.Post("/users", h.PostUsers)
	r.Post("/create-user", h.PostUsers)
	r.Get("/users/:id", h.GetUser)
	r.Put("/users/:id", h.PutUser)
	r.Delete("/users/:id", h.DeleteUser)
}
