package kernel

import "github.com/shopspring/decimal"

// Money is a monetary amount with exact decimal precision.
type Money = decimal.Decimal

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return decimal.Zero
}

// MustMoney parses s and panics on error. Use only for constants and tests.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}
