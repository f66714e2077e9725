// Package productrepo implements price resolution over the products table.
package productrepo

import (
	"github.com/shopspring/decimal"
)

// ProductDTO represents a row of the products table.
type ProductDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement:false"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}
