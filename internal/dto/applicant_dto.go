package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplicantDTO struct {
	ID           uuid.UUID  `json:"id"`
	Stage        string     `json:"stage"`
	ReferredByID *uuid.UUID `json:"referred_by_id,omitempty"`
	ReferralCode string     `json:"referral_code,omitempty"`
	User         UserDTO    `json:"user"`
	Job          JobDTO     `json:"job"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ApplyRequest struct {
	JobID        uuid.UUID `json:"job_id"`
	ReferralCode string    `json:"referral_code"`
}

type UpdateStageRequest struct {
	Stage string `json:"stage"`
}

type HistoryCandidateDTO struct {
	ID          uuid.UUID `json:"id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Stage       string    `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
}
