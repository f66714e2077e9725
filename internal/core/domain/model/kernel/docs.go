// Package kernel provides the domain primitives shared by the invoicing model:
// identifiers owned by other systems (customers, products) and Money.
//
// Identifiers are plain integers because customers and products are keyed by the
// surrounding database, not by this module. Money wraps shopspring/decimal so that
// prices and costs never pass through binary floating point.
package kernel
