package handler

import (
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	// pemanggilan LLM mahal, dibatasi per IP
	limit := middleware.RateLimiter(10, time.Minute)
	r.Post("/recommendation/job-role", limit, h.JobRoles)
	r.Post("/recommendation/skill", limit, h.Skills)
}

func (h *RecommendationHandler) JobRoles(c *fiber.Ctx) error {
	var req dto.JobRoleRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	roles, err := h.uc.JobRoles(c.UserContext(), req.Title)
	if err != nil {
		return failure(c, "failed to recommend job roles", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success recommend job roles",
		Data:    dto.JobRoleRecommendationResponse{Roles: roles},
	})
}

func (h *RecommendationHandler) Skills(c *fiber.Ctx) error {
	var req dto.SkillRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	skills, err := h.uc.Skills(c.UserContext(), req.Title, req.JobRole)
	if err != nil {
		return failure(c, "failed to recommend skills", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success recommend skills",
		Data:    dto.SkillRecommendationResponse{Skills: skills},
	})
}
