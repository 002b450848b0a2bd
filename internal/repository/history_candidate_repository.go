package repository

import (
	"context"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"gorm.io/gorm"
)

// HistoryCandidateRepository sengaja tidak punya Update/Delete: riwayat stage append-only.
type HistoryCandidateRepository struct {
	db *gorm.DB
}

func NewHistoryCandidateRepository(db *gorm.DB) *HistoryCandidateRepository {
	return &HistoryCandidateRepository{db}
}

func (r *HistoryCandidateRepository) Create(ctx context.Context, applicantID string, stage model.Stage) (*dto.HistoryCandidateDTO, error) {
	id, err := mustParseID(applicantID)
	if err != nil {
		return nil, err
	}
	row := model.HistoryCandidate{
		ApplicantID: id,
		Stage:       stage,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	out := toHistoryDTO(row)
	return &out, nil
}

func (r *HistoryCandidateRepository) ListByApplicant(ctx context.Context, applicantID string) ([]dto.HistoryCandidateDTO, error) {
	id, ok, err := parseID(applicantID)
	if err != nil {
		return nil, err
	}
	out := []dto.HistoryCandidateDTO{}
	if !ok {
		return out, nil
	}

	var rows []model.HistoryCandidate
	err = r.db.WithContext(ctx).
		Where("applicant_id = ?", id).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, h := range rows {
		out = append(out, toHistoryDTO(h))
	}
	return out, nil
}
