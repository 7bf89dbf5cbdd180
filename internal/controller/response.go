package controller

import (
	"github.com/gofiber/fiber/v2"
)

// Shared response helpers. Every endpoint answers with the same envelope:
// {success, code, message, data}.

func ok(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func created(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": message,
		"data":    data,
	})
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"code":    400,
		"message": err.Error(),
	})
}

func notFound(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"code":    404,
		"message": err.Error(),
	})
}

func conflict(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
		"success": false,
		"code":    409,
		"message": err.Error(),
	})
}

func unprocessable(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"code":    422,
		"message": err.Error(),
	})
}

func internalError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"code":    500,
		"message": err.Error(),
	})
}

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"code":    401,
		"message": "Unauthorized",
	})
}
