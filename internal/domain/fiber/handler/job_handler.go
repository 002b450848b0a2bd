package handler

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
	r.Post("/jobs", middleware.RequireAuth(), h.Create)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.ListPublished(c.UserContext())
	if err != nil {
		return failure(c, "failed to list jobs", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list jobs",
		Data:    jobs,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return failure(c, "job not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    job,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	job, err := h.uc.Create(c.UserContext(), middleware.GetSession(c), req)
	if err != nil {
		return failure(c, "failed to create job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    job,
	})
}
