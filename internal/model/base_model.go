package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base kolom standar setiap tabel. ID dibuat di aplikasi, bukan default DB,
// supaya insert tidak bergantung pada extension uuid-ossp.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
