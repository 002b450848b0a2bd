package repository

import (
	"context"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewApplicant struct {
	UserID       uuid.UUID
	JobID        uuid.UUID
	ReferredByID *uuid.UUID
	ReferralCode string
}

type ApplicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db}
}

func (r *ApplicantRepository) Create(ctx context.Context, in NewApplicant) (*dto.ApplicantDTO, error) {
	row := model.Applicant{
		UserID:       in.UserID,
		JobID:        in.JobID,
		Stage:        model.StageApplication,
		ReferredByID: in.ReferredByID,
		ReferralCode: in.ReferralCode,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, row.ID.String())
}

func (r *ApplicantRepository) FindByID(ctx context.Context, id string) (*dto.ApplicantDTO, error) {
	parsed, err := mustParseID(id)
	if err != nil {
		return nil, err
	}
	var row model.Applicant
	err = r.db.WithContext(ctx).
		Preload("User").
		Preload("Job").
		First(&row, "id = ?", parsed).Error
	if err != nil {
		return nil, translateError(err)
	}
	out := toApplicantDTO(row)
	return &out, nil
}

func (r *ApplicantRepository) ExistsForUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Applicant{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicantRepository) UpdateStage(ctx context.Context, id string, stage model.Stage) error {
	parsed, err := mustParseID(id)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&model.Applicant{}).
		Where("id = ?", parsed).
		Update("stage", stage)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicantRepository) ListByJob(ctx context.Context, jobID string, page, pageSize int) ([]dto.ApplicantDTO, *response.Pagination, error) {
	page, pageSize = response.NormalizePage(page, pageSize)
	out := []dto.ApplicantDTO{}

	id, ok, err := parseID(jobID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return out, response.NewPagination(page, pageSize, 0, 0), nil
	}

	db := r.db.WithContext(ctx).Model(&model.Applicant{}).Where("job_id = ?", id).Session(&gorm.Session{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var rows []model.Applicant
	err = db.
		Preload("User").
		Preload("Job").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	for _, a := range rows {
		out = append(out, toApplicantDTO(a))
	}
	return out, response.NewPagination(page, pageSize, total, len(out)), nil
}
