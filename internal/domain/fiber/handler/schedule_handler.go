package handler

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	uc *usecase.ScheduleUsecase
}

func NewScheduleHandler(uc *usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

func (h *ScheduleHandler) RegisterRoutes(r fiber.Router) {
	auth := middleware.RequireAuth()
	r.Get("/applicants/:id/schedule-interviews", auth, h.ListInterviews)
	r.Post("/schedule-interviews", auth, h.CreateInterview)
	r.Get("/applicants/:id/schedule-hired", auth, h.ListHired)
	r.Post("/schedule-hired", auth, h.CreateHired)
	r.Get("/locations/:id/schedule-times", auth, h.ListTimes)
	r.Post("/schedule-times", auth, h.CreateTime)
	r.Delete("/schedule-times/:id", auth, h.DeleteTime)
}

func (h *ScheduleHandler) ListInterviews(c *fiber.Ctx) error {
	list, err := h.uc.ListInterviews(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get interview schedules", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview schedules",
		Data:    list,
	})
}

func (h *ScheduleHandler) CreateInterview(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	s, err := h.uc.CreateInterview(c.UserContext(), middleware.GetSession(c), req)
	if err != nil {
		return failure(c, "failed to create interview schedule", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create interview schedule",
		Data:    s,
	})
}

func (h *ScheduleHandler) ListHired(c *fiber.Ctx) error {
	list, err := h.uc.ListHired(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get hired schedules", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get hired schedules",
		Data:    list,
	})
}

func (h *ScheduleHandler) CreateHired(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	s, err := h.uc.CreateHired(c.UserContext(), middleware.GetSession(c), req)
	if err != nil {
		return failure(c, "failed to create hired schedule", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create hired schedule",
		Data:    s,
	})
}

func (h *ScheduleHandler) ListTimes(c *fiber.Ctx) error {
	list, err := h.uc.ListTimes(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get schedule times", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get schedule times",
		Data:    list,
	})
}

func (h *ScheduleHandler) CreateTime(c *fiber.Ctx) error {
	var req dto.CreateScheduleTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	slot, err := h.uc.CreateTime(c.UserContext(), middleware.GetSession(c), req)
	if err != nil {
		return failure(c, "failed to create schedule time", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create schedule time",
		Data:    slot,
	})
}

func (h *ScheduleHandler) DeleteTime(c *fiber.Ctx) error {
	if err := h.uc.DeleteTime(c.UserContext(), middleware.GetSession(c), c.Params("id")); err != nil {
		return failure(c, "failed to delete schedule time", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete schedule time",
	})
}
