package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionDTO struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Kind     string    `json:"kind"`
	Position int       `json:"position"`
}

type EvaluatorReviewDTO struct {
	ID           uuid.UUID   `json:"id"`
	AssignmentID uuid.UUID   `json:"assignment_id"`
	Question     QuestionDTO `json:"question"`
	Score        *int        `json:"score"`
	Answer       *string     `json:"answer"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type AssignmentDTO struct {
	ID          uuid.UUID `json:"id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	EvaluatorID uuid.UUID `json:"evaluator_id"`
}

type ReviewAnswer struct {
	QuestionID uuid.UUID `json:"question_id"`
	Score      *int      `json:"score"`
	Answer     *string   `json:"answer"`
}

type SubmitReviewRequest struct {
	Answers []ReviewAnswer `json:"answers"`
}
