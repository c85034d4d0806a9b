// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Yosipmikecolin/app-web-wesense/internal/session"
	"github.com/Yosipmikecolin/app-web-wesense/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the console API using the usecase layer and the session registry.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	sessions *session.Registry
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, sessions *session.Registry) *Handler {
	return &Handler{
		log:      log,
		uc:       usecase,
		sessions: sessions,
	}
}
