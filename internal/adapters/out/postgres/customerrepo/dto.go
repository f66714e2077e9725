// Package customerrepo maps the customers table. Customers are owned outside the
// invoicing module; the mapping exists so invoices can reference them and so the
// schema can be created in tests.
package customerrepo

// CustomerDTO represents a row of the customers table.
type CustomerDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Street    string `gorm:"type:varchar(255)"`
	City      string `gorm:"type:varchar(255);index"`
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}
