package repository

import (
	"context"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var orderByDateDesc = clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}

type ScheduleInterviewRepository struct {
	db *gorm.DB
}

func NewScheduleInterviewRepository(db *gorm.DB) *ScheduleInterviewRepository {
	return &ScheduleInterviewRepository{db}
}

// FindByApplicant jadwal interview kandidat, terbaru dulu, lengkap dengan lokasi.
func (r *ScheduleInterviewRepository) FindByApplicant(ctx context.Context, applicantID string) ([]dto.ScheduleInterviewDTO, error) {
	id, ok, err := parseID(applicantID)
	if err != nil {
		return nil, err
	}
	out := []dto.ScheduleInterviewDTO{}
	if !ok {
		return out, nil
	}

	var rows []model.ScheduleInterview
	err = r.db.WithContext(ctx).
		Preload("Location").
		Where("applicant_id = ?", id).
		Order(orderByDateDesc).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, s := range rows {
		out = append(out, toScheduleInterviewDTO(s))
	}
	return out, nil
}

func (r *ScheduleInterviewRepository) Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleInterviewDTO, error) {
	row := model.ScheduleInterview{
		ApplicantID: req.ApplicantID,
		LocationID:  req.LocationID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		MeetingLink: req.MeetingLink,
		Notes:       req.Notes,
	}
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Location").First(&row, "id = ?", row.ID).Error; err != nil {
		return nil, translateError(err)
	}
	out := toScheduleInterviewDTO(row)
	return &out, nil
}

type ScheduleHiredRepository struct {
	db *gorm.DB
}

func NewScheduleHiredRepository(db *gorm.DB) *ScheduleHiredRepository {
	return &ScheduleHiredRepository{db}
}

func (r *ScheduleHiredRepository) FindByApplicant(ctx context.Context, applicantID string) ([]dto.ScheduleHiredDTO, error) {
	id, ok, err := parseID(applicantID)
	if err != nil {
		return nil, err
	}
	out := []dto.ScheduleHiredDTO{}
	if !ok {
		return out, nil
	}

	var rows []model.ScheduleHired
	err = r.db.WithContext(ctx).
		Preload("Location").
		Where("applicant_id = ?", id).
		Order(orderByDateDesc).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, s := range rows {
		out = append(out, toScheduleHiredDTO(s))
	}
	return out, nil
}

func (r *ScheduleHiredRepository) Create(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleHiredDTO, error) {
	row := model.ScheduleHired{
		ApplicantID: req.ApplicantID,
		LocationID:  req.LocationID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		Notes:       req.Notes,
	}
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Location").First(&row, "id = ?", row.ID).Error; err != nil {
		return nil, translateError(err)
	}
	out := toScheduleHiredDTO(row)
	return &out, nil
}
