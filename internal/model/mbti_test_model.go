package model

import (
	"github.com/google/uuid"
)

type MbtiTest struct {
	Base
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Result      string    `gorm:"type:varchar(4)" json:"result"`
	Link        string    `gorm:"type:text" json:"link"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
}

func (m *MbtiTest) TableName() string {
	return "mbti_tests"
}
