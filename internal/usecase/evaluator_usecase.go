package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/session"
	"github.com/google/uuid"
)

const (
	minReviewScore = 1
	maxReviewScore = 5
)

type reviewStore interface {
	FindAssignment(ctx context.Context, id string) (*dto.AssignmentDTO, error)
	ListByAssignment(ctx context.Context, assignmentID string) ([]dto.EvaluatorReviewDTO, error)
	Upsert(ctx context.Context, assignmentID string, answers []dto.ReviewAnswer) error
}

type EvaluatorUsecase struct {
	reviews reviewStore
}

func NewEvaluatorUsecase(reviews reviewStore) *EvaluatorUsecase {
	return &EvaluatorUsecase{reviews: reviews}
}

func (uc *EvaluatorUsecase) ListReviews(ctx context.Context, sess session.Session, assignmentID string) ([]dto.EvaluatorReviewDTO, error) {
	if err := uc.authorize(ctx, sess, assignmentID, true); err != nil {
		return nil, err
	}
	return uc.reviews.ListByAssignment(ctx, assignmentID)
}

// SubmitReviews menyimpan jawaban, jawaban lama untuk pertanyaan yang sama ditimpa.
func (uc *EvaluatorUsecase) SubmitReviews(ctx context.Context, sess session.Session, assignmentID string, req dto.SubmitReviewRequest) ([]dto.EvaluatorReviewDTO, error) {
	if err := uc.authorize(ctx, sess, assignmentID, false); err != nil {
		return nil, err
	}
	answers, err := normalizeAnswers(req.Answers)
	if err != nil {
		return nil, err
	}
	if err := uc.reviews.Upsert(ctx, assignmentID, answers); err != nil {
		return nil, err
	}
	return uc.reviews.ListByAssignment(ctx, assignmentID)
}

func (uc *EvaluatorUsecase) authorize(ctx context.Context, sess session.Session, assignmentID string, adminMayRead bool) error {
	if err := requireAuth(sess); err != nil {
		return err
	}
	assignment, err := uc.reviews.FindAssignment(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment.EvaluatorID == sess.UserID {
		return nil
	}
	if adminMayRead && sess.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

func normalizeAnswers(in []dto.ReviewAnswer) ([]dto.ReviewAnswer, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: answers are required", ErrInvalidInput)
	}
	out := make([]dto.ReviewAnswer, 0, len(in))
	seen := make(map[uuid.UUID]struct{}, len(in))
	for _, a := range in {
		if a.QuestionID == uuid.Nil {
			return nil, fmt.Errorf("%w: question_id is required", ErrInvalidInput)
		}
		if _, dup := seen[a.QuestionID]; dup {
			return nil, fmt.Errorf("%w: duplicate answer for question %s", ErrInvalidInput, a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}

		if a.Score != nil && (*a.Score < minReviewScore || *a.Score > maxReviewScore) {
			return nil, fmt.Errorf("%w: score must be between %d and %d", ErrInvalidInput, minReviewScore, maxReviewScore)
		}
		if a.Answer != nil {
			text := strings.TrimSpace(*a.Answer)
			if text == "" {
				a.Answer = nil
			} else {
				a.Answer = &text
			}
		}
		if a.Score == nil && a.Answer == nil {
			return nil, fmt.Errorf("%w: question %s has neither score nor answer", ErrInvalidInput, a.QuestionID)
		}
		out = append(out, a)
	}
	return out, nil
}
