package model

import (
	"github.com/google/uuid"
)

type QuestionKind string

const (
	QuestionScale QuestionKind = "SCALE"
	QuestionText  QuestionKind = "TEXT"
)

type EvaluatorAssignment struct {
	Base
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
	EvaluatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"evaluator_id"`
	Evaluator   User      `gorm:"foreignKey:EvaluatorID" json:"-"`
	LinkToken   string    `gorm:"type:varchar(64);uniqueIndex" json:"link_token"`
}

type Question struct {
	Base
	Text     string       `gorm:"type:text;not null" json:"text"`
	Kind     QuestionKind `gorm:"type:varchar(10);not null" json:"kind"`
	Position int          `gorm:"not null;default:0" json:"position"`
}

type EvaluatorReview struct {
	Base
	AssignmentID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_review_assignment_question" json:"assignment_id"`
	Assignment   EvaluatorAssignment `gorm:"foreignKey:AssignmentID" json:"-"`
	QuestionID   uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_review_assignment_question" json:"question_id"`
	Question     Question            `gorm:"foreignKey:QuestionID" json:"question"`
	Score        *int                `json:"score"`
	Answer       *string             `gorm:"type:text" json:"answer"`
}
