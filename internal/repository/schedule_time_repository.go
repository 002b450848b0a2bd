package repository

import (
	"context"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleTimeRepository struct {
	db *gorm.DB
}

func NewScheduleTimeRepository(db *gorm.DB) *ScheduleTimeRepository {
	return &ScheduleTimeRepository{db}
}

func (r *ScheduleTimeRepository) Create(ctx context.Context, req dto.CreateScheduleTimeRequest) (*dto.ScheduleTimeDTO, error) {
	row := model.ScheduleTime{
		LocationID: req.LocationID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, err
	}
	out := toScheduleTimeDTO(row)
	return &out, nil
}

// ListByLocation slot mulai dari tanggal from, urut tanggal lalu jam mulai.
func (r *ScheduleTimeRepository) ListByLocation(ctx context.Context, locationID string, from time.Time) ([]dto.ScheduleTimeDTO, error) {
	id, ok, err := parseID(locationID)
	if err != nil {
		return nil, err
	}
	out := []dto.ScheduleTimeDTO{}
	if !ok {
		return out, nil
	}

	var rows []model.ScheduleTime
	err = r.db.WithContext(ctx).
		Where("location_id = ?", id).
		Where(clause.Gte{Column: clause.Column{Name: "date"}, Value: from}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}}).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, s := range rows {
		out = append(out, toScheduleTimeDTO(s))
	}
	return out, nil
}

// Delete menghapus slot. Tidak idempotent: slot yang sudah terhapus mengembalikan ErrNotFound.
func (r *ScheduleTimeRepository) Delete(ctx context.Context, id string) error {
	parsed, err := mustParseID(id)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&model.ScheduleTime{}, "id = ?", parsed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
