package handler

import (
	"errors"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidStage):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, usecase.ErrAlreadyApplied),
		errors.Is(err, repository.ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, usecase.ErrProviderReply):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func failure(c *fiber.Ctx, message string, err error) error {
	var formErr *util.FormError
	if errors.As(err, &formErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    statusOf(err),
		Message: message,
	}, err)
}

func badBody(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "invalid request body",
	}, err)
}
