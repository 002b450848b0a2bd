package handler

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/response"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ApplicantHandler struct {
	uc *usecase.ApplicantUsecase
}

func NewApplicantHandler(uc *usecase.ApplicantUsecase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

func (h *ApplicantHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/referral/:code", h.Referral)

	auth := middleware.RequireAuth()
	r.Post("/applicants", auth, h.Apply)
	r.Get("/applicants/:id/history", auth, h.History)
	r.Patch("/applicants/:id/stage", auth, h.MoveStage)
	r.Get("/jobs/:id/applicants", auth, h.ListByJob)
}

func (h *ApplicantHandler) Referral(c *fiber.Ctx) error {
	ref, err := h.uc.FindReferral(c.UserContext(), c.Params("code"))
	if err != nil {
		return failure(c, "failed to check referral code", err)
	}
	if ref == nil {
		return failure(c, "referral code not found", repository.ErrNotFound)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get referral",
		Data:    ref,
	})
}

func (h *ApplicantHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	applicant, err := h.uc.Apply(c.UserContext(), middleware.GetSession(c), req)
	if err != nil {
		return failure(c, "failed to apply", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success apply",
		Data:    applicant,
	})
}

func (h *ApplicantHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get history", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get history",
		Data:    history,
	})
}

func (h *ApplicantHandler) MoveStage(c *fiber.Ctx) error {
	var req dto.UpdateStageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	applicant, err := h.uc.MoveStage(c.UserContext(), middleware.GetSession(c), c.Params("id"), req.Stage)
	if err != nil {
		return failure(c, "failed to update stage", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update stage",
		Data:    applicant,
	})
}

func (h *ApplicantHandler) ListByJob(c *fiber.Ctx) error {
	applicants, pagination, err := h.uc.ListByJob(
		c.UserContext(),
		middleware.GetSession(c),
		c.Params("id"),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", response.DefaultPageSize),
	)
	if err != nil {
		return failure(c, "failed to list applicants", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list applicants",
		Data:       applicants,
		Pagination: pagination,
	})
}
