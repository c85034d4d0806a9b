// Package server assembles the fiber application.
package server

import (
	"github.com/Yosipmikecolin/app-web-wesense/config"
	"github.com/Yosipmikecolin/app-web-wesense/internal/gate"
	"github.com/Yosipmikecolin/app-web-wesense/internal/session"
	handlers_fiber "github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/server/handlers-fiber"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/middleware"
	"github.com/Yosipmikecolin/app-web-wesense/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// NewApp builds the fiber app with middleware and routes. The route
// classification is fixed here from cfg.Session.ExcludedRoutes.
func NewApp(cfg *config.Config, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, sessions *session.Registry) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	serv.Use(middleware.BrowserContext(middleware.BrowserContextConfig{
		CookieName: cfg.Session.CookieName,
		Secret:     []byte(cfg.Session.Secret),
		TTL:        cfg.Session.CookieTTL,
	}, log))
	serv.Use(middleware.Gate(sessions, gate.NewClassifier(cfg.Session.ExcludedRoutes...), cfg.Session.LoginRoute))

	h := handlers_fiber.NewHandler(log, uc, sessions)
	handlers_fiber.RegisterHandlers(serv, h)

	return serv
}
