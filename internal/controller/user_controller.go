package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/pkg/serverutils"
	"yolcu-backend/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Get("/me", c.Me)
	h.Put("/me", c.UpdateProfile)
	h.Get("/:id", c.Get)
}

func (c *userController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid user id"))
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "User fetched", res)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	res, err := c.service.GetById(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Profile fetched", res)
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Profile updated", res)
}
