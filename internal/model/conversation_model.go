package model

import (
	"github.com/google/uuid"
)

type Conversation struct {
	Base
	ApplicantID  uuid.UUID                 `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant    Applicant                 `gorm:"foreignKey:ApplicantID" json:"applicant"`
	Title        string                    `gorm:"type:varchar(255)" json:"title"`
	Messages     []Message                 `gorm:"foreignKey:ConversationID" json:"messages"`
	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID" json:"participants"`
}

type ConversationParticipant struct {
	Base
	ConversationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_participant_conversation_user" json:"conversation_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_participant_conversation_user" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"user"`
}

type Message struct {
	Base
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	Sender         User      `gorm:"foreignKey:SenderID" json:"sender"`
	Body           string    `gorm:"type:text;not null" json:"body"`
}
