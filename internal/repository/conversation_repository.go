package repository

import (
	"context"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db}
}

func preloadConversation(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Applicant.User").
		Preload("Applicant.Job").
		Preload("Participants.User")
}

// FindByID percakapan lengkap: pesan (lama ke baru), peserta, dan pelamar beserta user dan lowongannya.
func (r *ConversationRepository) FindByID(ctx context.Context, id string) (*dto.ConversationDTO, error) {
	parsed, err := mustParseID(id)
	if err != nil {
		return nil, err
	}
	var c model.Conversation
	err = preloadConversation(r.db.WithContext(ctx)).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Messages.Sender").
		First(&c, "id = ?", parsed).Error
	if err != nil {
		return nil, translateError(err)
	}
	out := toConversationDTO(c)
	return &out, nil
}

// ListByParticipant tanpa pesan; yang terakhir aktif di atas.
func (r *ConversationRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]dto.ConversationDTO, error) {
	db := r.db.WithContext(ctx)
	sub := db.Model(&model.ConversationParticipant{}).
		Select("conversation_id").
		Where("user_id = ?", userID)

	var rows []model.Conversation
	err := preloadConversation(db).
		Where("id IN (?)", sub).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConversationDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, toConversationDTO(c))
	}
	return out, nil
}

func (r *ConversationRepository) IsParticipant(ctx context.Context, conversationID string, userID uuid.UUID) (bool, error) {
	id, ok, err := parseID(conversationID)
	if err != nil || !ok {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).
		Model(&model.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, conversationID string, senderID uuid.UUID, body string) (*dto.MessageDTO, error) {
	id, err := mustParseID(conversationID)
	if err != nil {
		return nil, err
	}
	msg := model.Message{
		ConversationID: id,
		SenderID:       senderID,
		Body:           body,
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&msg).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Conversation{}).Where("id = ?", id).Update("updated_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Preload("Sender").First(&msg, "id = ?", msg.ID).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	out := toMessageDTO(msg)
	return &out, nil
}
