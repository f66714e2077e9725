package http

import "invoicing/internal/core/application/usecases/queries"

// CreateInvoiceRequest is the body of POST /api/v1/invoices.
// ProductIDs and Quantities are parallel lists paired by position.
type CreateInvoiceRequest struct {
	CustomerID *int64  `json:"customer_id" validate:"required,gte=0"`
	ProductIDs []int64 `json:"product_ids" validate:"required,dive,gte=0"`
	Quantities []int   `json:"quantities"  validate:"required,dive,gt=0"`
}

type CreateInvoiceResponse struct {
	ID int64 `json:"id"`
}

type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func newCustomer(c queries.CustomerResponse) Customer {
	return Customer{ID: int64(c.ID), Name: c.Name, Address: c.Address}
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type NameResponse struct {
	Name string `json:"name"`
}

// TotalResponse carries the amount as a fixed two-decimal string.
type TotalResponse struct {
	Total string `json:"total"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
