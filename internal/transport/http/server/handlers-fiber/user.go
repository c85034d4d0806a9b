package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/mapper"
	"github.com/Yosipmikecolin/app-web-wesense/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns the filtered page of users.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	var params dto.ListUsersParams
	if err := c.QueryParser(&params); err != nil {
		h.log.Errorw("failed to parse query", "error", err.Error())
		return writeError(c, fmt.Errorf("%w: invalid query", entities.ErrInvalidArgument))
	}

	listing, err := h.uc.ListUsers(c.UserContext(), mapper.FromDTOListParams(params))
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOUserList(listing, h.uc.PageSizes()))
}

// GetUser returns a single user.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	usr, err := h.uc.User(c.UserContext(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*usr)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostUsers creates a user from the registration form.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body dto.UserForm
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body", nil))
	}

	usr, err := h.uc.CreateUser(c.UserContext(), mapper.FromDTOUserForm("", body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*usr)}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PutUser saves the edit dialog.
func (h *Handler) PutUser(c *fiber.Ctx) error {
	var body dto.UserForm
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body", nil))
	}

	usr, err := h.uc.UpdateUser(c.UserContext(), mapper.FromDTOUserForm(c.Params("id"), body))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*usr)}
	return c.Status(http.StatusOK).JSON(resp)
}

// DeleteUser removes a user.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
