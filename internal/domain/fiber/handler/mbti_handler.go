package handler

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MbtiHandler struct {
	uc *usecase.MbtiUsecase
}

func NewMbtiHandler(uc *usecase.MbtiUsecase) *MbtiHandler {
	return &MbtiHandler{uc: uc}
}

func (h *MbtiHandler) RegisterRoutes(r fiber.Router) {
	auth := middleware.RequireAuth()
	r.Get("/applicants/:id/mbti", auth, h.Get)
	r.Post("/applicants/:id/mbti", auth, h.Record)
}

func (h *MbtiHandler) Get(c *fiber.Ctx) error {
	test, err := h.uc.Get(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get mbti test", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get mbti test",
		Data:    test,
	})
}

func (h *MbtiHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordMbtiRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	test, err := h.uc.Record(c.UserContext(), middleware.GetSession(c), c.Params("id"), req)
	if err != nil {
		return failure(c, "failed to record mbti test", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success record mbti test",
		Data:    test,
	})
}
