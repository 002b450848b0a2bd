package repository

import (
	"context"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewJob struct {
	JobCode     string
	Title       string
	JobRole     string
	Description string
	Skills      []string
	SalaryMin   *int64
	SalaryMax   *int64
	LocationID  *uuid.UUID
	IsPublished bool
	Embedding   []float32
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// SearchSimilar lowongan terdekat dari embedding (hanya Postgres + pgvector).
func (r *JobRepository) SearchSimilar(ctx context.Context, embedding []float32, topK int) ([]dto.SimilarJobDTO, error) {
	var jobs []model.Job
	vec := pgvector.NewVector(embedding)

	// query pgvector <-> operator (Euclidean distance)
	err := r.db.WithContext(ctx).Raw(`
        SELECT id, title, job_role
        FROM jobs
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, vec, topK).Scan(&jobs).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.SimilarJobDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.SimilarJobDTO{ID: j.ID, Title: j.Title, JobRole: j.JobRole})
	}
	return out, nil
}

func (r *JobRepository) Create(ctx context.Context, in NewJob) (*dto.JobDTO, error) {
	row := model.Job{
		JobCode:     in.JobCode,
		Title:       in.Title,
		JobRole:     in.JobRole,
		Description: in.Description,
		Skills:      datatypes.JSONSlice[string](in.Skills),
		SalaryMin:   in.SalaryMin,
		SalaryMax:   in.SalaryMax,
		LocationID:  in.LocationID,
		IsPublished: in.IsPublished,
	}
	if len(in.Embedding) > 0 {
		vec := pgvector.NewVector(in.Embedding)
		row.Embedding = &vec
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, translateError(err)
	}
	out := toJobDTO(row)
	return &out, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*dto.JobDTO, error) {
	parsed, err := mustParseID(id)
	if err != nil {
		return nil, err
	}
	var j model.Job
	if err := r.db.WithContext(ctx).First(&j, "id = ?", parsed).Error; err != nil {
		return nil, translateError(err)
	}
	out := toJobDTO(j)
	return &out, nil
}

// CountAll termasuk yang belum dipublikasikan, dipakai untuk nomor urut kode lowongan.
func (r *JobRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepository) ListPublished(ctx context.Context) ([]dto.JobDTO, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobDTO(j))
	}
	return out, nil
}
