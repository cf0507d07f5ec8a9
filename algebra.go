// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package dim

import (
	"strconv"

	"github.com/wdamron/dim/types"
)

// Scalar is the dimension of bare numbers; its signature is always empty.
// Any normal operation resulting in a scalar is downgraded to a bare number,
// so this dimension mostly serves to keep the dimension algebra closed under
// multiplication and division.
var Scalar = newDerived("Scalar", "unit", types.Quantity{Magnitude: 1})

// Composite names are derived mechanically from the operand names.
func times(a, b string) string { return a + "_" + b }
func per(a, b string) string   { return a + "_per_" + b }
func squared(a string) string  { return a + "_squared" }
func pow(a string, n int) string {
	return a + "_pow_" + strconv.Itoa(n)
}

// Mul synthesizes the product dimension. Multiplying a dimension by itself
// (by signature) squares the canonical unit (`metre_squared`); otherwise the
// units are joined (`metre_kilogram`). The new dimension carries a single
// seed unit; further named units may be attached with Extend.
func (d *Dimension) Mul(o *Dimension) *Dimension {
	name := times(d.name, o.name)
	if d.Equal(o) {
		return newDerived(name, squared(d.unitName), types.Quantity{Magnitude: 1, Signature: d.sig.Pow(2)})
	}
	return newDerived(name, times(d.unitName, o.unitName), types.Quantity{Magnitude: 1, Signature: d.sig.Mul(o.sig)})
}

// Div synthesizes the quotient dimension (`metre_per_second`). Dividing a
// dimension by itself yields Scalar.
func (d *Dimension) Div(o *Dimension) *Dimension {
	if d.Equal(o) {
		return Scalar
	}
	return newDerived(per(d.name, o.name), per(d.unitName, o.unitName), types.Quantity{Magnitude: 1, Signature: d.sig.Div(o.sig)})
}

// Recip synthesizes the reciprocal dimension (`unit_per_second`).
func (d *Dimension) Recip() *Dimension {
	return newDerived(per("unit", d.name), per("unit", d.unitName), types.Quantity{Magnitude: 1, Signature: d.sig.Recip()})
}

// Pow raises the dimension to an integer power. Unlike quantity
// exponentiation, a zero exponent is legal here and yields Scalar; an
// exponent of 1 is the identity, returning d itself.
func (d *Dimension) Pow(n int) *Dimension {
	switch {
	case n == 0:
		return Scalar
	case n == 1:
		return d
	case n == 2:
		return d.Mul(d)
	case n < 0:
		return d.Pow(-n).Recip()
	}
	return newDerived(pow(d.name, n), pow(d.unitName, n), types.Quantity{Magnitude: 1, Signature: d.sig.Pow(n)})
}
