package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

const loginFailedMessage = "Credenciales incorrectas. Intente de nuevo."

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := "internal error"
	var fields map[string]string

	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		code = dto.INVALIDARGUMENT
		msg = "validation failed"
		fields = verr.Fields
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = dto.USEREXISTS
		msg = "Ya existe un usuario con el mismo email"
	case errors.Is(err, entities.ErrLoginFailed):
		status = http.StatusUnauthorized
		code = dto.LOGINFAILED
		msg = loginFailedMessage
	case errors.Is(err, entities.ErrLoginInProgress):
		status = http.StatusConflict
		code = dto.LOGININPROGRESS
		msg = "login already in progress"
	}

	return c.Status(status).JSON(errorResponse(code, msg, fields))
}

func errorResponse(code dto.ErrorCode, msg string, fields map[string]string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg, Fields: fields}}
}
