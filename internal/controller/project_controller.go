package controller

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/pkg/serverutils"
	"yolcu-backend/internal/service"
	"yolcu-backend/pkg/generator"
)

// maxProjectSize caps project uploads (source file, pdf, or zip) at 10 MB.
const maxProjectSize = 10 << 20

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Suggestions(ctx *fiber.Ctx) error
	Evaluate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type projectController struct {
	service service.IProjectService
}

func NewProjectController(service service.IProjectService) IProjectController {
	return &projectController{service: service}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	r.Get("/project-suggestions", c.Suggestions)

	h := r.Group("/projects")
	h.Get("/", c.List)
	h.Post("/evaluate", c.Evaluate)
}

func (c *projectController) Suggestions(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	res, err := c.service.Suggestions(ctx.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRoadmapForSuggestions):
			return notFound(ctx, err)
		case errors.Is(err, generator.ErrMalformedAIResponse):
			return unprocessable(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Project suggestions generated", res)
}

func (c *projectController) Evaluate(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	var req dto.EvaluateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, errors.New("file is required"))
	}
	if fileHeader.Size > maxProjectSize {
		return badRequest(ctx, errors.New("file exceeds the 10 MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(ctx, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return internalError(ctx, err)
	}

	res, err := c.service.Evaluate(ctx.Context(), userId, &req, fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, generator.ErrUnsupportedFile) {
			return unprocessable(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "Project evaluated", res)
}

func (c *projectController) List(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	res, err := c.service.List(ctx.Context(), userId)
	if err != nil {
		return internalError(ctx, err)
	}
	return ok(ctx, "Projects fetched", res)
}
