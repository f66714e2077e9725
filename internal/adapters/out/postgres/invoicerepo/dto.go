// Package invoicerepo provides data transfer objects and mapping functions for invoice persistence.
// An invoice is stored as one row in invoices plus one row per line in items.
package invoicerepo

import (
	"invoicing/internal/adapters/out/postgres/customerrepo"
	"invoicing/internal/adapters/out/postgres/productrepo"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the invoice header row. ID is generated by the database.
type InvoiceDTO struct {
	ID         int64                    `gorm:"primaryKey"`
	CustomerID int64                    `gorm:"not null;index"`
	Customer   customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID"`
	Total      decimal.Decimal          `gorm:"type:numeric(12,2);not null"`
	Items      []ItemDTO                `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// ItemDTO represents one line item row, keyed by (invoice_id, line_number).
type ItemDTO struct {
	InvoiceID  int64                  `gorm:"primaryKey;autoIncrement:false"`
	LineNumber int                    `gorm:"primaryKey;autoIncrement:false"`
	ProductID  int64                  `gorm:"not null;index"`
	Product    productrepo.ProductDTO `gorm:"foreignKey:ProductID"`
	Quantity   int                    `gorm:"not null"`
	Cost       decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// newHeaderDTO builds the header row for a new invoice; ID is left for the database.
func newHeaderDTO(customerID kernel.CustomerID) InvoiceDTO {
	return InvoiceDTO{
		CustomerID: int64(customerID),
		Total:      invoice.PlaceholderTotal(),
	}
}

// fromDomain converts a line item to its row.
func fromDomain(item invoice.Item) ItemDTO {
	return ItemDTO{
		InvoiceID:  int64(item.InvoiceID()),
		LineNumber: item.LineNumber(),
		ProductID:  int64(item.ProductID()),
		Quantity:   item.Quantity(),
		Cost:       item.Cost(),
	}
}
