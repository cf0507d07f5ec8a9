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

// Value is the base interface for numbers flowing through quantity
// arithmetic: bare (abstract) numbers and concrete numbers.
type Value interface {
	ValueName() string
	Mag() float64
}

// Scalar is a bare real number, carrying no signature.
type Scalar float64

func (s Scalar) ValueName() string { return "Scalar" }
func (s Scalar) Mag() float64      { return float64(s) }

// Quantity is a concrete number: a magnitude denominated by a signature.
//
// The magnitude is always a plain real number, never itself a Quantity.
// Quantities are immutable after construction. Constructing a Quantity from
// an explicit magnitude and Signature is supported for advanced use; most
// quantities are obtained by operating on a dimension's units.
type Quantity struct {
	Magnitude float64
	Signature Signature
}

func (q Quantity) ValueName() string { return "Quantity" }
func (q Quantity) Mag() float64      { return q.Magnitude }

// Downgrade converts a concrete number to a bare number when its signature
// has fully cancelled. This is what makes km/km a plain number.
func Downgrade(q Quantity) Value {
	if q.Signature.IsScalar() {
		return Scalar(q.Magnitude)
	}
	return q
}

// The conversions below forget the units: they operate on the magnitude as
// expressed in the canonical unit, regardless of signature.

// Float returns the magnitude.
func (q Quantity) Float() float64 { return q.Magnitude }

// Trunc returns the magnitude rounded toward zero.
func (q Quantity) Trunc() float64 { return math.Trunc(q.Magnitude) }

// Abs returns the absolute value of the magnitude.
func (q Quantity) Abs() float64 { return math.Abs(q.Magnitude) }

// Round returns the magnitude rounded to the nearest integer.
func (q Quantity) Round() float64 { return math.Round(q.Magnitude) }

// Ceil returns the least integer value greater than or equal to the magnitude.
func (q Quantity) Ceil() float64 { return math.Ceil(q.Magnitude) }

// Floor returns the greatest integer value less than or equal to the magnitude.
func (q Quantity) Floor() float64 { return math.Floor(q.Magnitude) }
