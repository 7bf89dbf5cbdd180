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

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	ListByRoadmap(ctx *fiber.Ctx) error
}

type quizController struct {
	service service.IQuizService
}

func NewQuizController(service service.IQuizService) IQuizController {
	return &quizController{service: service}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quizzes")
	h.Post("/generate", c.Generate)
	h.Get("/roadmap/:id", c.ListByRoadmap)
}

func (c *quizController) Generate(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Generate(ctx.Context(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoadmapNotFound):
			return notFound(ctx, err)
		case errors.Is(err, generator.ErrEmptyAIResponse), errors.Is(err, generator.ErrMalformedAIResponse):
			return unprocessable(ctx, err)
		}
		return internalError(ctx, err)
	}
	return created(ctx, "Quiz generated", res)
}

func (c *quizController) ListByRoadmap(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	roadmapId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, errors.New("invalid roadmap id"))
	}

	res, err := c.service.ListByRoadmap(ctx.Context(), userId, roadmapId)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			return notFound(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Quiz questions fetched", res)
}
