package models

import "time"

// Brand is a product manufacturer; slug is the stable identifier used in URLs.
type Brand struct {
	ID          int       `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	Logo        string    `gorm:"column:logo"`
	Country     string    `gorm:"column:country"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brands"
}
