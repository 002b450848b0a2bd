package repository

import (
	"context"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db}
}

func (r *LocationRepository) FindByID(ctx context.Context, id string) (*dto.LocationDTO, error) {
	parsed, err := mustParseID(id)
	if err != nil {
		return nil, err
	}
	var l model.Location
	if err := r.db.WithContext(ctx).First(&l, "id = ?", parsed).Error; err != nil {
		return nil, translateError(err)
	}
	out := toLocationDTO(l)
	return &out, nil
}
