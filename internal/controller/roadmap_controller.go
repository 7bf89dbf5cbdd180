package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/pkg/serverutils"
	"yolcu-backend/internal/service"
	"yolcu-backend/pkg/generator"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	Summaries(ctx *fiber.Ctx) error
	Motivation(ctx *fiber.Ctx) error
}

type roadmapController struct {
	roadmaps service.IRoadmapService
	chat     service.IChatService
}

func NewRoadmapController(roadmaps service.IRoadmapService, chat service.IChatService) IRoadmapController {
	return &roadmapController{
		roadmaps: roadmaps,
		chat:     chat,
	}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/roadmaps")
	h.Post("/generate", c.Generate)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Post("/:id/chat", c.Chat)
	h.Get("/:id/summaries", c.Summaries)

	r.Get("/motivational-message", c.Motivation)
}

func (c *roadmapController) Generate(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	var req dto.GenerateRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.roadmaps.Generate(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, generator.ErrMalformedAIResponse) {
			return unprocessable(ctx, err)
		}
		return internalError(ctx, err)
	}
	return created(ctx, "Roadmap generated", res)
}

func (c *roadmapController) List(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	res, err := c.roadmaps.List(ctx.Context(), userId)
	if err != nil {
		return internalError(ctx, err)
	}
	return ok(ctx, "Roadmaps fetched", res)
}

func (c *roadmapController) Get(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	roadmapId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid roadmap id"))
	}

	res, err := c.roadmaps.Get(ctx.Context(), userId, roadmapId)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Roadmap fetched", res)
}

func (c *roadmapController) Chat(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	roadmapId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid roadmap id"))
	}

	var req dto.RoadmapChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.chat.Ask(ctx.Context(), userId, roadmapId, &req)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Question answered", res)
}

func (c *roadmapController) Summaries(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	roadmapId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid roadmap id"))
	}

	itemId := ctx.Query("item_id")
	if itemId == "" {
		return badRequest(ctx, errors.New("item_id query parameter is required"))
	}

	res, err := c.roadmaps.Summarize(ctx.Context(), userId, roadmapId, itemId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoadmapNotFound):
			return notFound(ctx, err)
		case errors.Is(err, generator.ErrItemNotFound):
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Summary generated", res)
}

func (c *roadmapController) Motivation(ctx *fiber.Ctx) error {
	res, err := c.roadmaps.Motivation(ctx.Context())
	if err != nil {
		return internalError(ctx, err)
	}
	return ok(ctx, "Motivational message generated", res)
}
