package model

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleEvaluator Role = "EVALUATOR"
	RoleCandidate Role = "CANDIDATE"
)

type User struct {
	Base
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string  `gorm:"type:varchar(50)" json:"phone"`
	Role         Role    `gorm:"type:varchar(20);default:'CANDIDATE'" json:"role"`
	ReferralCode *string `gorm:"type:varchar(50);uniqueIndex" json:"referral_code"`
}
