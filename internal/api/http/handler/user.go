package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/middleware"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/internal/service/user"
)

type UserHandler struct {
	svc      user.Service
	notifSvc notification.Service
}

func NewUserHandler(svc user.Service, notifSvc notification.Service) *UserHandler {
	return &UserHandler{svc: svc, notifSvc: notifSvc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrInvalidRole):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName    string  `json:"first_name"`
		LastName     string  `json:"last_name"`
		Email        string  `json:"email"`
		Phone        *string `json:"phone"`
		Role         string  `json:"role"`
		Specialty    *string `json:"specialty"`
		Description  *string `json:"description"`
		SupervisorID *string `json:"supervisor_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := user.CreateRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Phone:       body.Phone,
		Role:        body.Role,
		Specialty:   body.Specialty,
		Description: body.Description,
	}
	if body.SupervisorID != nil {
		id, err := uuid.Parse(*body.SupervisorID)
		if err != nil {
			return badRequest(c, "invalid supervisor_id")
		}
		req.SupervisorID = &id
	}

	u, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, u)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		Specialty   *string `json:"specialty"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), userID, user.UpdateRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Phone:       body.Phone,
		Specialty:   body.Specialty,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Role != "" {
		req.Role = &q.Role
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	users, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, users)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Delete(c.Context(), userID); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// GET /users/me/reminder-prefs
func (h *UserHandler) GetReminderPrefs(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	prefs, err := h.notifSvc.ResolvePrefs(c.Context(), actorID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, prefs)
}

// PATCH /users/me/reminder-prefs
func (h *UserHandler) UpdateReminderPrefs(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DelayHours         *int    `json:"delay_hours"`
		EmailEnabled       *bool   `json:"email_enabled"`
		InAppEnabled       *bool   `json:"in_app_enabled"`
		OverrideEmail      *string `json:"override_email"`
		ClearOverrideEmail bool    `json:"clear_override_email"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	prefs, err := h.notifSvc.UpdatePrefs(c.Context(), actorID, notification.UpdatePrefsRequest{
		DelayHours:         body.DelayHours,
		EmailEnabled:       body.EmailEnabled,
		InAppEnabled:       body.InAppEnabled,
		OverrideEmail:      body.OverrideEmail,
		ClearOverrideEmail: body.ClearOverrideEmail,
	})
	if err != nil {
		if errors.Is(err, notification.ErrInvalidDelay) {
			return unprocessable(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, prefs)
}
