package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/dto"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db}
}

// FindByCode mencari pemilik kode referral. Kode kosong tidak menyentuh database.
// Hasil nil tanpa error berarti kode tidak dikenal.
func (r *ReferralRepository) FindByCode(ctx context.Context, code string) (*dto.ReferralDTO, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	var user model.User
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "referral_code").
		Where("referral_code = ?", code).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := &dto.ReferralDTO{Name: user.Name, Email: user.Email}
	if user.ReferralCode != nil {
		out.Code = *user.ReferralCode
	}
	return out, nil
}

// FindOwnerID id user pemilik kode, dipakai saat atribusi lamaran.
func (r *ReferralRepository) FindOwnerID(ctx context.Context, code string) (*uuid.UUID, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("referral_code = ?", code).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user.ID, nil
}
