package controller

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"yolcu-backend/internal/pkg/serverutils"
	"yolcu-backend/internal/service"
	"yolcu-backend/pkg/generator"
)

// maxCVSize caps CV uploads at 5 MB.
const maxCVSize = 5 << 20

type ICVController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
}

type cvController struct {
	service service.ICVService
}

func NewCVController(service service.ICVService) ICVController {
	return &cvController{service: service}
}

func (c *cvController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cv")
	h.Post("/analyze", c.Analyze)
}

func (c *cvController) Analyze(ctx *fiber.Ctx) error {
	userId, found := serverutils.UserID(ctx)
	if !found {
		return unauthorized(ctx)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, errors.New("file is required"))
	}
	if fileHeader.Size > maxCVSize {
		return badRequest(ctx, errors.New("file exceeds the 5 MB limit"))
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

	res, err := c.service.Analyze(ctx.Context(), userId, fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, generator.ErrUnsupportedFile) {
			return unprocessable(ctx, err)
		}
		return internalError(ctx, err)
	}
	return ok(ctx, "CV analyzed", res)
}
