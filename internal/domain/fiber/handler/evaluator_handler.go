package handler

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EvaluatorHandler struct {
	uc *usecase.EvaluatorUsecase
}

func NewEvaluatorHandler(uc *usecase.EvaluatorUsecase) *EvaluatorHandler {
	return &EvaluatorHandler{uc: uc}
}

func (h *EvaluatorHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/assignments", middleware.RequireAuth())
	g.Get("/:id/reviews", h.ListReviews)
	g.Post("/:id/reviews", h.SubmitReviews)
}

func (h *EvaluatorHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.uc.ListReviews(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get reviews", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get reviews",
		Data:    reviews,
	})
}

func (h *EvaluatorHandler) SubmitReviews(c *fiber.Ctx) error {
	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	reviews, err := h.uc.SubmitReviews(c.UserContext(), middleware.GetSession(c), c.Params("id"), req)
	if err != nil {
		return failure(c, "failed to submit reviews", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success submit reviews",
		Data:    reviews,
	})
}
