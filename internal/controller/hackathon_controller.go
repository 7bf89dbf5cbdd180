package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/pkg/serverutils"
	"yolcu-backend/internal/service"
)

type IHackathonController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	CreateTeam(ctx *fiber.Ctx) error
	JoinTeam(ctx *fiber.Ctx) error
	HackathonMessages(ctx *fiber.Ctx) error
	TeamMessages(ctx *fiber.Ctx) error
}

type hackathonController struct {
	service service.IHackathonService
}

func NewHackathonController(service service.IHackathonService) IHackathonController {
	return &hackathonController{service: service}
}

func (c *hackathonController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hackathons")
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Post("/:id/teams", c.CreateTeam)
	h.Get("/:id/messages", c.HackathonMessages)

	t := r.Group("/teams")
	t.Post("/:id/join", c.JoinTeam)
	t.Get("/:id/messages", c.TeamMessages)
}

func (c *hackathonController) Create(ctx *fiber.Ctx) error {
	if _, found := serverutils.UserID(ctx); !found {
		return unauthorized(ctx)
	}

	var req dto.CreateHackathonRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return internalError(ctx, err)
	}
	return created(ctx, "Hackathon created", res)
}

func (c *hackathonController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return internalError(ctx, err)
	}
	return ok(ctx, "Hackathons fetched", res)
}

func (c *hackathonController) CreateTeam(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	hackathonId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid hackathon id"))
	}

	var req dto.CreateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.CreateTeam(ctx.Context(), userId, hackathonId, &req)
	if err != nil {
		if errors.Is(err, service.ErrHackathonNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return created(ctx, "Team created", res)
}

func (c *hackathonController) JoinTeam(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid team id"))
	}

	if err := c.service.JoinTeam(ctx.Context(), userId, teamId); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			return notFound(ctx, err)
		case errors.Is(err, service.ErrAlreadyMember):
			return conflict(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Joined team", nil)
}

func (c *hackathonController) HackathonMessages(ctx *fiber.Ctx) error {
	if _, found := serverutils.UserID(ctx); !found {
		return unauthorized(ctx)
	}

	hackathonId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid hackathon id"))
	}

	res, err := c.service.HackathonMessages(ctx.Context(), hackathonId)
	if err != nil {
		return internalError(ctx, err)
	}
	return ok(ctx, "Messages fetched", res)
}

func (c *hackathonController) TeamMessages(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid team id"))
	}

	res, err := c.service.TeamMessages(ctx.Context(), userId, teamId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			return notFound(ctx, err)
		case errors.Is(err, service.ErrNotRoomMember):
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"code":    403,
				"message": err.Error(),
			})
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Messages fetched", res)
}
