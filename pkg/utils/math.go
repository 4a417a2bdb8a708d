package utils

import "github.com/shopspring/decimal"

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// RoundHalfUp rounds value to places decimal places, with ties rounded away
// from zero. The value is taken at its shortest decimal representation, so
// 6.015 rounds to 6.02 even though its binary form is slightly below.
func RoundHalfUp(value float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return rounded
}

// RoundMoney rounds a monetary amount to cents.
func RoundMoney(value float64) float64 {
	return RoundHalfUp(value, 2)
}

// DivideMoney divides a monetary amount and rounds the quotient to cents.
// A zero divisor yields zero.
func DivideMoney(value, divisor float64) float64 {
	if divisor == 0 {
		return 0
	}
	quotient := decimal.NewFromFloat(value).Div(decimal.NewFromFloat(divisor))
	rounded, _ := quotient.Round(2).Float64()
	return rounded
}
