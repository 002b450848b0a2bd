package dto

import (
	"time"

	"github.com/google/uuid"
)

type MbtiTestDTO struct {
	ID          uuid.UUID `json:"id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Result      string    `json:"result"`
	Link        string    `json:"link,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type RecordMbtiRequest struct {
	Result string `json:"result"`
	Link   string `json:"link"`
}
