package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleInterviewDTO struct {
	ID          uuid.UUID   `json:"id"`
	ApplicantID uuid.UUID   `json:"applicant_id"`
	Date        time.Time   `json:"date"`
	StartTime   string      `json:"start_time"`
	MeetingLink string      `json:"meeting_link,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Location    LocationDTO `json:"location"`
}

type ScheduleHiredDTO struct {
	ID          uuid.UUID   `json:"id"`
	ApplicantID uuid.UUID   `json:"applicant_id"`
	Date        time.Time   `json:"date"`
	StartTime   string      `json:"start_time"`
	Notes       string      `json:"notes,omitempty"`
	Location    LocationDTO `json:"location"`
}

type CreateScheduleRequest struct {
	ApplicantID uuid.UUID `json:"applicant_id"`
	LocationID  uuid.UUID `json:"location_id"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	MeetingLink string    `json:"meeting_link"`
	Notes       string    `json:"notes"`
}

type ScheduleTimeDTO struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

type CreateScheduleTimeRequest struct {
	LocationID uuid.UUID `json:"location_id"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}
