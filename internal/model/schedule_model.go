package model

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleInterview struct {
	Base
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
	LocationID  uuid.UUID `gorm:"type:uuid;not null" json:"location_id"`
	Location    Location  `gorm:"foreignKey:LocationID" json:"location"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	StartTime   string    `gorm:"type:varchar(5)" json:"start_time"`
	MeetingLink string    `gorm:"type:text" json:"meeting_link"`
	Notes       string    `gorm:"type:text" json:"notes"`
}

type ScheduleHired struct {
	Base
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
	LocationID  uuid.UUID `gorm:"type:uuid;not null" json:"location_id"`
	Location    Location  `gorm:"foreignKey:LocationID" json:"location"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	StartTime   string    `gorm:"type:varchar(5)" json:"start_time"`
	Notes       string    `gorm:"type:text" json:"notes"`
}

func (s *ScheduleHired) TableName() string {
	return "schedule_hired"
}

// ScheduleTime slot waktu yang bisa dipesan di sebuah lokasi.
type ScheduleTime struct {
	Base
	LocationID uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	Location   Location  `gorm:"foreignKey:LocationID" json:"-"`
	Date       time.Time `gorm:"not null" json:"date"`
	StartTime  string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime    string    `gorm:"type:varchar(5);not null" json:"end_time"`
}
