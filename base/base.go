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

// base defines the standard physical quantities of the International System
// of Quantities, along with the usual derived dimensions.
//
// https://en.wikipedia.org/wiki/International_System_of_Quantities#Base_quantities
package base

import (
	"github.com/wdamron/dim"
	"github.com/wdamron/dim/types"
)

// Metric prefixes, applied to a magnitude expressed in canonical units.

func Kilo(v float64) float64  { return 1000 * v }
func Centi(v float64) float64 { return v / 100 }
func Milli(v float64) float64 { return v / 1000 }
func Micro(v float64) float64 { return v / 1000000 }
func Nano(v float64) float64  { return v / 1e9 }

var Length = dim.MustNew("Length", []dim.Decl{
	{Name: "metre", Value: dim.UNIT},
	{Name: "kilometer", Value: types.Scalar(Kilo(1))},
	{Name: "km", Value: types.Scalar(Kilo(1))},
	{Name: "centimeter", Value: types.Scalar(Centi(1))},
	{Name: "cm", Value: types.Scalar(Centi(1))},
	{Name: "millimeter", Value: types.Scalar(Milli(1))},
	{Name: "mm", Value: types.Scalar(Milli(1))},
	{Name: "nanometer", Value: types.Scalar(Nano(1))},
	{Name: "nm", Value: types.Scalar(Nano(1))},
}, dim.WithUnitAlias("m"))

var Time = dim.MustNew("Time", []dim.Decl{
	{Name: "second", Value: dim.UNIT},
	{Name: "millisecond", Value: types.Scalar(Milli(1))},
	{Name: "ms", Value: types.Scalar(Milli(1))},
	{Name: "nanosecond", Value: types.Scalar(Nano(1))},
	{Name: "ns", Value: types.Scalar(Nano(1))},
	{Name: "minute", Value: types.Scalar(60)},
	{Name: "hour", Value: types.Scalar(3600)},
}, dim.WithUnitAlias("s"))

var Mass = dim.MustNew("Mass", []dim.Decl{
	{Name: "kilogram", Value: dim.UNIT},
	{Name: "gram", Value: types.Scalar(1.0 / 1000)},
}, dim.WithUnitAliases("kg"))

var ElectricCurrent = dim.MustNew("ElectricCurrent", []dim.Decl{
	{Name: "ampere", Value: dim.UNIT},
	{Name: "milliampere", Value: types.Scalar(Milli(1))},
}, dim.WithUnitAliases("A"))

var Temperature = dim.MustNew("Temperature", []dim.Decl{
	{Name: "kelvin", Value: dim.UNIT},
}, dim.WithUnitAliases("K"))

// FromCelsius converts v degrees Celsius to kelvins.
func FromCelsius(v float64) types.Quantity {
	return Temperature.Quantity(v + 273.15)
}

// FromFahrenheit converts v degrees Fahrenheit to kelvins.
func FromFahrenheit(v float64) types.Quantity {
	return Temperature.Quantity((v + 459.67) * 5 / 9)
}

var Substance = dim.MustNew("Substance", []dim.Decl{
	{Name: "mole", Value: dim.UNIT},
}, dim.WithUnitAlias("mol"))

var Luminosity = dim.MustNew("Luminosity", []dim.Decl{
	{Name: "candela", Value: dim.UNIT},
})

// Conventional one-letter names for the base dimensions. The actual symbol
// for Temperature would be the capital letter Theta.
var (
	L = Length
	T = Time
	M = Mass
	I = ElectricCurrent
	O = Temperature
	N = Substance
	J = Luminosity
)

// Common units.
var (
	Metre  = Length.Unit()
	Km     = Length.MustUnit("km")
	Cm     = Length.MustUnit("cm")
	Mm     = Length.MustUnit("mm")
	Second = Time.Unit()
	Minute = Time.MustUnit("minute")
	Hour   = Time.MustUnit("hour")
	Kg     = Mass.Unit()
	Gram   = Mass.MustUnit("gram")
	Ampere = ElectricCurrent.Unit()
	Kelvin = Temperature.Unit()
	Mole   = Substance.Unit()
)
