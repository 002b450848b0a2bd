package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stage tahapan rekrutmen kandidat.
type Stage string

const (
	StageApplication Stage = "APPLICATION"
	StageScreening   Stage = "SCREENING"
	StageInterview   Stage = "INTERVIEW"
	StageOffering    Stage = "OFFERING"
	StageHired       Stage = "HIRED"
	StageRejected    Stage = "REJECTED"
)

var stages = map[Stage]struct{}{
	StageApplication: {},
	StageScreening:   {},
	StageInterview:   {},
	StageOffering:    {},
	StageHired:       {},
	StageRejected:    {},
}

func (s Stage) Valid() bool {
	_, ok := stages[s]
	return ok
}

type Applicant struct {
	Base
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"user"`
	JobID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"job_id"`
	Job          Job        `gorm:"foreignKey:JobID" json:"job"`
	Stage        Stage      `gorm:"type:varchar(20);not null;default:'APPLICATION'" json:"stage"`
	ReferredByID *uuid.UUID `gorm:"type:uuid;index" json:"referred_by_id"`
	ReferredBy   *User      `gorm:"foreignKey:ReferredByID" json:"referred_by,omitempty"`
	ReferralCode string     `gorm:"type:varchar(50)" json:"referral_code"`
}

// HistoryCandidate catatan perpindahan stage. Append-only, tidak punya UpdatedAt.
type HistoryCandidate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Stage       Stage     `gorm:"type:varchar(20);not null" json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *HistoryCandidate) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (h *HistoryCandidate) TableName() string {
	return "history_candidates"
}
