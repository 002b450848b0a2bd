package handler

import (
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ConversationHandler struct {
	uc *usecase.ConversationUsecase
}

func NewConversationHandler(uc *usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

func (h *ConversationHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/conversations", middleware.RequireAuth())
	g.Get("/", h.ListMine)
	g.Get("/:id", h.Get)
	g.Post("/:id/messages", h.Send)
}

func (h *ConversationHandler) ListMine(c *fiber.Ctx) error {
	list, err := h.uc.ListMine(c.UserContext(), middleware.GetSession(c))
	if err != nil {
		return failure(c, "failed to list conversations", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list conversations",
		Data:    list,
	})
}

func (h *ConversationHandler) Get(c *fiber.Ctx) error {
	conv, err := h.uc.Get(c.UserContext(), middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return failure(c, "failed to get conversation", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get conversation",
		Data:    conv,
	})
}

func (h *ConversationHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	msg, err := h.uc.Send(c.UserContext(), middleware.GetSession(c), c.Params("id"), req)
	if err != nil {
		return failure(c, "failed to send message", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success send message",
		Data:    msg,
	})
}
