package dto

import "github.com/google/uuid"

type UserDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	ReferralCode string    `json:"referral_code,omitempty"`
}

// ReferralDTO hanya field yang boleh keluar dari lookup kode referral.
type ReferralDTO struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Email string `json:"email"`
}

type LocationDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	MapsURL string    `json:"maps_url,omitempty"`
}
