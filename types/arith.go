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

package types

import (
	"math"
)

// Dimensional homogeneity: only quantities of equal signature may be added,
// subtracted, or compared. Ratios of incommensurable quantities are fine.

// Add sums two values of equal signature.
func Add(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a + b, nil
		}
	case Quantity:
		// What is the meaning of "10km + 1"?
		if b, ok := b.(Quantity); ok && a.Signature.Equal(b.Signature) {
			return Quantity{a.Magnitude + b.Magnitude, a.Signature}, nil
		}
	}
	return nil, opErr("+", a, b)
}

// Sub subtracts two values of equal signature.
func Sub(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a - b, nil
		}
	case Quantity:
		if b, ok := b.(Quantity); ok && a.Signature.Equal(b.Signature) {
			return Quantity{a.Magnitude - b.Magnitude, a.Signature}, nil
		}
	}
	return nil, opErr("-", a, b)
}

// Neg negates a value, keeping its signature.
func Neg(v Value) Value {
	switch v := v.(type) {
	case Scalar:
		return -v
	case Quantity:
		return Quantity{-v.Magnitude, v.Signature}
	}
	return v
}

// Pos returns the value unchanged.
func Pos(v Value) Value { return v }

// promote lifts a bare number into a quantity with the empty signature.
func promote(v Value) (Quantity, bool) {
	switch v := v.(type) {
	case Scalar:
		return Quantity{float64(v), EmptySignature}, true
	case Quantity:
		return v, true
	}
	return Quantity{}, false
}

// Mul multiplies two values. Bare operands are treated as quantities with
// the empty signature; a result whose signature fully cancels is downgraded
// to a bare number.
func Mul(a, b Value) (Value, error) {
	qa, ok := promote(a)
	if !ok {
		return nil, opErr("*", a, b)
	}
	qb, ok := promote(b)
	if !ok {
		return nil, opErr("*", a, b)
	}
	return Downgrade(Quantity{qa.Magnitude * qb.Magnitude, qa.Signature.Mul(qb.Signature)}), nil
}

// Div divides two values, with the same promotion and downgrade rules as Mul.
func Div(a, b Value) (Value, error) {
	qa, ok := promote(a)
	if !ok {
		return nil, opErr("/", a, b)
	}
	qb, ok := promote(b)
	if !ok {
		return nil, opErr("/", a, b)
	}
	return Downgrade(Quantity{qa.Magnitude / qb.Magnitude, qa.Signature.Div(qb.Signature)}), nil
}

// FloorDiv divides two values, rounding the magnitude toward negative
// infinity. Signature and downgrade rules are those of Div.
func FloorDiv(a, b Value) (Value, error) {
	qa, ok := promote(a)
	if !ok {
		return nil, opErr("//", a, b)
	}
	qb, ok := promote(b)
	if !ok {
		return nil, opErr("//", a, b)
	}
	return Downgrade(Quantity{math.Floor(qa.Magnitude / qb.Magnitude), qa.Signature.Div(qb.Signature)}), nil
}

// Pow raises a value to an integer power. A quantity cannot be raised to the
// zeroth power (the result would silently forget its units); a negative
// exponent is the reciprocal of the positive power.
func Pow(v Value, exp int) (Value, error) {
	switch v := v.(type) {
	case Scalar:
		return Scalar(math.Pow(float64(v), float64(exp))), nil
	case Quantity:
		if exp == 0 {
			return nil, Error.New("unsupported operand type(s) for **: '%s' and '0'", v.Signature)
		}
		if exp < 0 {
			p, err := Pow(v, -exp)
			if err != nil {
				return nil, err
			}
			return Div(Scalar(1), p)
		}
		return Quantity{math.Pow(v.Magnitude, float64(exp)), v.Signature.Pow(exp)}, nil
	}
	return nil, opErr("**", v, Scalar(float64(exp)))
}

// Mod takes a value modulo a bare number, keeping the signature. The
// reflected form is a rare operation: if 5/2m is 2.5/m, then 5%2m is
// allowed and yields 1/m.
func Mod(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Scalar:
		switch b := b.(type) {
		case Scalar:
			return Scalar(math.Mod(float64(a), float64(b))), nil
		case Quantity:
			return Quantity{math.Mod(float64(a), b.Magnitude), b.Signature.Recip()}, nil
		}
	case Quantity:
		if b, ok := b.(Scalar); ok {
			return Quantity{math.Mod(a.Magnitude, float64(b)), a.Signature}, nil
		}
	}
	return nil, opErr("%", a, b)
}

// Eq compares two values for equality. Quantities compare by magnitude when
// their signatures are equal; a quantity with the empty signature compares
// against bare numbers. Comparing across signatures is an error, never
// false: silent false equality would hide dimensional bugs.
func Eq(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Scalar:
		switch b := b.(type) {
		case Scalar:
			return a == b, nil
		case Quantity:
			if b.Signature.IsScalar() {
				return float64(a) == b.Magnitude, nil
			}
		}
	case Quantity:
		switch b := b.(type) {
		case Scalar:
			if a.Signature.IsScalar() {
				return a.Magnitude == float64(b), nil
			}
		case Quantity:
			if a.Signature.Equal(b.Signature) {
				return a.Magnitude == b.Magnitude, nil
			}
		}
	}
	return false, opErr("==", a, b)
}

// Lt reports whether a is less than b. Only values of equal signature are
// orderable.
func Lt(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a < b, nil
		}
	case Quantity:
		if b, ok := b.(Quantity); ok && a.Signature.Equal(b.Signature) {
			return a.Magnitude < b.Magnitude, nil
		}
	}
	return false, opErr("<", a, b)
}

// Le reports whether a is less than or equal to b.
func Le(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a <= b, nil
		}
	case Quantity:
		if b, ok := b.(Quantity); ok && a.Signature.Equal(b.Signature) {
			return a.Magnitude <= b.Magnitude, nil
		}
	}
	return false, opErr("<=", a, b)
}

// Gt reports whether a is greater than b.
func Gt(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a > b, nil
		}
	case Quantity:
		if b, ok := b.(Quantity); ok && a.Signature.Equal(b.Signature) {
			return a.Magnitude > b.Magnitude, nil
		}
	}
	return false, opErr(">", a, b)
}

// Ge reports whether a is greater than or equal to b.
func Ge(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return a >= b, nil
		}
	case Quantity:
		if b, ok := b.(Quantity); ok && a.Signature.Equal(b.Signature) {
			return a.Magnitude >= b.Magnitude, nil
		}
	}
	return false, opErr(">=", a, b)
}
