// Package deform implements the length scaling law used when material laid
// out at one thickness is rolled to another. Only the length axis deforms;
// widths are preserved.
package deform

import "math"

// Rounding is a pure unary rounding function applied to a deformed length.
// A nil Rounding leaves the value untouched.
type Rounding func(float64) float64

// RoundTo returns a Rounding that keeps the given number of decimals.
func RoundTo(decimals int) Rounding {
	pow := math.Pow(10, float64(decimals))
	return func(v float64) float64 {
		return math.Round(v*pow) / pow
	}
}

// Length converts a length measured at thickness h0 to the equivalent length
// at thickness h1:
//
//	l1 = strain * h0 * l / h1
//
// strain is a dimensionless correction factor; values above 1 add a length
// reserve, values below 1 shrink it.
func Length(l, h0, h1, strain float64, round Rounding) float64 {
	l1 := strain * (h0 * l / h1)
	if round != nil {
		l1 = round(l1)
	}
	return l1
}

// Back inverts Length: it converts a length measured at thickness h1 back to
// thickness h0 units. With equal parameters and no rounding, Back(Length(l))
// returns l.
func Back(l, h0, h1, strain float64, round Rounding) float64 {
	l0 := l / (strain * h0) * h1
	if round != nil {
		l0 = round(l0)
	}
	return l0
}
