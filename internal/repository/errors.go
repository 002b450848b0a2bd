package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
	ErrDuplicate = errors.New("duplicate record")
)

// translateError butuh gorm.Config{TranslateError: true} untuk mengenali
// pelanggaran unique.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// parseID menolak id kosong. ok=false berarti id tidak berformat uuid,
// jadi tidak mungkin cocok dengan baris mana pun.
func parseID(id string) (uuid.UUID, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.Nil, false, ErrInvalidID
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return parsed, true, nil
}

// mustParseID seperti parseID tapi id yang tidak berformat uuid dianggap tidak ditemukan.
func mustParseID(id string) (uuid.UUID, error) {
	parsed, ok, err := parseID(id)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return parsed, nil
}
