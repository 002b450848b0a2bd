package model

type Location struct {
	Base
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	MapsURL string `gorm:"type:text" json:"maps_url"`
}
