package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Sender         UserDTO   `json:"sender"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationDTO struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Applicant    ApplicantDTO `json:"applicant"`
	Participants []UserDTO    `json:"participants"`
	Messages     []MessageDTO `json:"messages"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type SendMessageRequest struct {
	Body string `json:"body"`
}
