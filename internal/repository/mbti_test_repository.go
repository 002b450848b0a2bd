package repository

import (
	"context"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"gorm.io/gorm"
)

type MbtiTestRepository struct {
	db *gorm.DB
}

func NewMbtiTestRepository(db *gorm.DB) *MbtiTestRepository {
	return &MbtiTestRepository{db}
}

// FindByApplicant hasil tes terbaru milik kandidat.
func (r *MbtiTestRepository) FindByApplicant(ctx context.Context, applicantID string) (*dto.MbtiTestDTO, error) {
	id, err := mustParseID(applicantID)
	if err != nil {
		return nil, err
	}
	var m model.MbtiTest
	err = r.db.WithContext(ctx).
		Where("applicant_id = ?", id).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	out := toMbtiDTO(m)
	return &out, nil
}

func (r *MbtiTestRepository) Create(ctx context.Context, applicantID string, result, link string) (*dto.MbtiTestDTO, error) {
	id, err := mustParseID(applicantID)
	if err != nil {
		return nil, err
	}
	m := model.MbtiTest{
		ApplicantID: id,
		Result:      result,
		Link:        link,
		IsCompleted: result != "",
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	out := toMbtiDTO(m)
	return &out, nil
}
