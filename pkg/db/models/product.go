package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is the persisted catalog row. The fixture store mirrors this shape,
// so either backend can serve the storefront unchanged.
type Product struct {
	ID            int            `gorm:"column:id;primaryKey"`
	Title         string         `gorm:"column:title;not null"`
	Description   string         `gorm:"column:description"`
	Price         float64        `gorm:"column:price;type:numeric(12,2);not null"`
	Discount      int            `gorm:"column:discount;not null;default:0"`
	DiscountPrice float64        `gorm:"column:discount_price;type:numeric(12,2)"`
	Article       string         `gorm:"column:article"`
	Composition   string         `gorm:"column:composition"`
	Width         string         `gorm:"column:width"`
	Density       string         `gorm:"column:density"`
	Country       string         `gorm:"column:country"`
	Category      string         `gorm:"column:category;not null"`
	Brand         string         `gorm:"column:brand;not null"`
	IsNew         bool           `gorm:"column:is_new;not null;default:false"`
	Images        pq.StringArray `gorm:"column:images;type:text[]"`
	Stock         *int           `gorm:"column:stock"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
