package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/google/uuid"
)

const maxMessageLength = 4000

type conversationStore interface {
	FindByID(ctx context.Context, id string) (*dto.ConversationDTO, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]dto.ConversationDTO, error)
	IsParticipant(ctx context.Context, conversationID string, userID uuid.UUID) (bool, error)
	CreateMessage(ctx context.Context, conversationID string, senderID uuid.UUID, body string) (*dto.MessageDTO, error)
}

type ConversationUsecase struct {
	conversations conversationStore
}

func NewConversationUsecase(conversations conversationStore) *ConversationUsecase {
	return &ConversationUsecase{conversations: conversations}
}

func (uc *ConversationUsecase) ListMine(ctx context.Context, sess session.Session) ([]dto.ConversationDTO, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	return uc.conversations.ListByParticipant(ctx, sess.UserID)
}

func (uc *ConversationUsecase) Get(ctx context.Context, sess session.Session, id string) (*dto.ConversationDTO, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	// bukan peserta selalu 403, ada atau tidaknya percakapan tidak terlihat
	if err := uc.ensureParticipant(ctx, sess, id); err != nil {
		return nil, err
	}
	return uc.conversations.FindByID(ctx, id)
}

func (uc *ConversationUsecase) Send(ctx context.Context, sess session.Session, id string, req dto.SendMessageRequest) (*dto.MessageDTO, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	body := util.StripHTML(req.Body)
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, maxMessageLength)
	}
	if err := uc.ensureParticipant(ctx, sess, id); err != nil {
		return nil, err
	}
	return uc.conversations.CreateMessage(ctx, id, sess.UserID, body)
}

func (uc *ConversationUsecase) ensureParticipant(ctx context.Context, sess session.Session, id string) error {
	ok, err := uc.conversations.IsParticipant(ctx, id, sess.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
