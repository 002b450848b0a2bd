package model

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Job struct {
	Base
	JobCode     string                      `gorm:"type:varchar(30);uniqueIndex" json:"job_code"`
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	JobRole     string                      `gorm:"type:varchar(255)" json:"job_role"`
	Description string                      `gorm:"type:text" json:"description"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
	SalaryMin   *int64                      `json:"salary_min"`
	SalaryMax   *int64                      `json:"salary_max"`
	LocationID  *uuid.UUID                  `gorm:"type:uuid;index" json:"location_id"`
	Location    *Location                   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	IsPublished bool                        `gorm:"default:false" json:"is_published"`
	Embedding   *pgvector.Vector            `gorm:"type:vector(3072)" json:"-"` // pakai pgvector
}

func (j *Job) TableName() string {
	return "jobs"
}
