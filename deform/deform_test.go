package deform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLength(t *testing.T) {
	// Rolling a length of 4 from thickness 1 to thickness 3 compresses it.
	assert.InDelta(t, 4.0/3.0, Length(4, 1, 3, 1, nil), 1e-12)
	// Strain adds a reserve.
	assert.InDelta(t, 4.0/3.0*1.1, Length(4, 1, 3, 1.1, nil), 1e-12)
	// Equal thicknesses scale by strain only.
	assert.InDelta(t, 10.0, Length(10, 2, 2, 1, nil), 1e-12)
}

func TestLength_Rounding(t *testing.T) {
	assert.Equal(t, 3.7, Length(10, 1, 3, 1.1, RoundTo(1)))
	assert.Equal(t, 4.0, Length(10, 1, 3, 1.1, RoundTo(0)))
}

func TestBack_InvertsLength(t *testing.T) {
	cases := []struct {
		l, h0, h1, strain float64
	}{
		{4, 1, 3, 1},
		{55, 3, 1, 1},
		{27, 3, 2, 1.1},
		{10.5, 2.5, 0.7, 0.8},
	}
	for _, c := range cases {
		deformed := Length(c.l, c.h0, c.h1, c.strain, nil)
		back := Back(deformed, c.h0, c.h1, c.strain, nil)
		assert.InEpsilon(t, c.l, back, 1e-9, "l=%g h0=%g h1=%g k=%g", c.l, c.h0, c.h1, c.strain)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 2.3333, RoundTo(4)(7.0/3.0))
	assert.Equal(t, 2.3, RoundTo(1)(7.0/3.0))
	assert.Equal(t, 2.0, RoundTo(0)(7.0/3.0))
}
