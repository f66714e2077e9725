// Package invoice models the billing records written by the invoicing module.
//
// The package includes:
//   - ID: the surrogate key the store assigns to an invoice header
//   - Line: one validated (product, quantity) request pair
//   - Item: one persisted line item carrying the price snapshot
//
// Key business rules:
//   - Product ids and quantities arrive as parallel slices and must pair up one to one
//   - Quantities are positive
//   - Line numbers are zero-based input positions
//   - An item's cost is the product price at creation time and never changes afterwards
//   - Headers are written with PlaceholderTotal; nothing in this module recomputes it
package invoice
