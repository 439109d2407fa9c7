package models

import "time"

// Category groups products; slug is the stable identifier used in URLs.
type Category struct {
	ID           int       `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Slug         string    `gorm:"column:slug;uniqueIndex;not null"`
	Description  string    `gorm:"column:description"`
	Image        string    `gorm:"column:image"`
	ProductCount int       `gorm:"column:product_count;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}
