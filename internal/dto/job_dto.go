package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobDTO struct {
	ID          uuid.UUID  `json:"id"`
	JobCode     string     `json:"job_code"`
	Title       string     `json:"title"`
	JobRole     string     `json:"job_role"`
	Description string     `json:"description"`
	Skills      []string   `json:"skills"`
	SalaryMin   *int64     `json:"salary_min"`
	SalaryMax   *int64     `json:"salary_max"`
	Salary      string     `json:"salary"`
	LocationID  *uuid.UUID `json:"location_id"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateJobRequest struct {
	Title       string     `json:"title"`
	JobRole     string     `json:"job_role"`
	Description string     `json:"description"`
	Skills      []string   `json:"skills"`
	SalaryMin   *int64     `json:"salary_min"`
	SalaryMax   *int64     `json:"salary_max"`
	LocationID  *uuid.UUID `json:"location_id"`
	IsPublished bool       `json:"is_published"`
}

// SimilarJobDTO hasil pencarian embedding.
type SimilarJobDTO struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	JobRole string    `json:"job_role"`
}
