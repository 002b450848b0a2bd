package repository

import (
	"context"
	"slices"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluatorReviewRepository struct {
	db *gorm.DB
}

func NewEvaluatorReviewRepository(db *gorm.DB) *EvaluatorReviewRepository {
	return &EvaluatorReviewRepository{db}
}

func (r *EvaluatorReviewRepository) FindAssignment(ctx context.Context, id string) (*dto.AssignmentDTO, error) {
	parsed, err := mustParseID(id)
	if err != nil {
		return nil, err
	}
	var a model.EvaluatorAssignment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", parsed).Error; err != nil {
		return nil, translateError(err)
	}
	return &dto.AssignmentDTO{ID: a.ID, ApplicantID: a.ApplicantID, EvaluatorID: a.EvaluatorID}, nil
}

// ListByAssignment review beserta pertanyaannya, urut posisi pertanyaan.
func (r *EvaluatorReviewRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]dto.EvaluatorReviewDTO, error) {
	id, ok, err := parseID(assignmentID)
	if err != nil {
		return nil, err
	}
	out := []dto.EvaluatorReviewDTO{}
	if !ok {
		return out, nil
	}

	var rows []model.EvaluatorReview
	err = r.db.WithContext(ctx).
		Preload("Question").
		Where("assignment_id = ?", id).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(a, b model.EvaluatorReview) int {
		return a.Question.Position - b.Question.Position
	})
	for _, rv := range rows {
		out = append(out, toReviewDTO(rv))
	}
	return out, nil
}

// Upsert satu jawaban per (assignment, question); jawaban ulang menimpa yang lama.
func (r *EvaluatorReviewRepository) Upsert(ctx context.Context, assignmentID string, answers []dto.ReviewAnswer) error {
	id, err := mustParseID(assignmentID)
	if err != nil {
		return err
	}
	if len(answers) == 0 {
		return nil
	}

	rows := make([]model.EvaluatorReview, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, model.EvaluatorReview{
			AssignmentID: id,
			QuestionID:   a.QuestionID,
			Score:        a.Score,
			Answer:       a.Answer,
		})
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "answer", "updated_at"}),
		}).
		Create(&rows).Error
}
