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

package base

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/dim/types"
)

// mustVal returns a closure collapsing a (Value, error) pair, failing the
// test on error.
func mustVal(t *testing.T) func(types.Value, error) types.Value {
	return func(v types.Value, err error) types.Value {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func requireEq(t *testing.T, a, b types.Value) {
	t.Helper()
	eq, err := types.Eq(a, b)
	require.NoError(t, err)
	require.True(t, eq, "%s != %s", a, b)
}

func TestRoundTripKmMetre(t *testing.T) {
	must := mustVal(t)
	requireEq(t,
		must(types.Mul(types.Scalar(10), Km)),
		must(types.Mul(types.Scalar(10000), Metre)))

	lt, err := types.Lt(Metre, Km)
	require.NoError(t, err)
	require.True(t, lt)
}

func TestScalarDowngrade(t *testing.T) {
	must := mustVal(t)
	ratio := must(types.Div(Km, Km))
	require.IsType(t, types.Scalar(0), ratio)
	requireEq(t, ratio, types.Scalar(1))

	ratio = must(types.FloorDiv(Km, Km))
	require.IsType(t, types.Scalar(0), ratio)
	requireEq(t, ratio, types.Scalar(1))

	round := must(types.Mul(must(types.Div(types.Scalar(1), Km)), Km))
	require.IsType(t, types.Scalar(0), round)
	requireEq(t, round, types.Scalar(1))
}

func TestNaturalDowngrade(t *testing.T) {
	require.Equal(t, 1000.0, Km.Float())
	require.Equal(t, 0.0, Cm.Trunc())
}

func TestMagnitudeConversions(t *testing.T) {
	for _, mag := range []float64{-7.75, -1, 0, 0.01, 2.5, 1000} {
		q := Length.Quantity(mag)
		require.Equal(t, mag, q.Float())
	}

	q := Length.Quantity(-7.75)
	require.Equal(t, -7.0, q.Trunc())
	require.Equal(t, 7.75, q.Abs())
	require.Equal(t, -8.0, q.Round())
	require.Equal(t, -7.0, q.Ceil())
	require.Equal(t, -8.0, q.Floor())
}

func TestSpeedComposition(t *testing.T) {
	must := mustVal(t)
	ms := must(types.Div(Metre, Second))
	require.True(t, Velocity.Contains(ms))
	require.True(t, L.Div(T).Contains(ms))
	requireEq(t, Velocity.MustUnit("metre_per_second"), ms)
}

func TestDerivedDimensions(t *testing.T) {
	require.True(t, Area.Equal(Length.Mul(Length)))
	require.True(t, Volume.Equal(Length.Pow(3)))
	require.True(t, Force.Equal(Length.Mul(Mass).Mul(Time.Pow(-2))))
	require.True(t, Pressure.Equal(Length.Pow(-1).Mul(Mass).Mul(Time.Pow(-2))), "as defined in Wikipedia")
	require.True(t, Acceleration.Equal(Length.Div(Time.Pow(2))))

	_, ok := Force.Named("metre_kilogram_per_second_squared")
	require.True(t, ok)
	_, ok = Pressure.Named("kilogram_per_metre_per_second_squared")
	require.True(t, ok)
}

func TestConventionalAliases(t *testing.T) {
	// Volume's canonical unit carries the conventional name; the derived
	// name survives as an alias.
	require.Equal(t, "metre_cubic", Volume.UnitName())
	requireEq(t, Volume.MustUnit("metre_cubic"), Volume.Unit())
	requireEq(t, Volume.MustUnit("metre_pow_3"), Volume.Unit())
	requireEq(t, Frequency.MustUnit("Hz"), Frequency.Unit())
	requireEq(t, Force.MustUnit("Newton"), Force.Unit())
	requireEq(t, Force.MustUnit("N"), Force.Unit())
	requireEq(t, Pressure.MustUnit("Pascal"), Pressure.Unit())
	requireEq(t, Pressure.MustUnit("Pa"), Pressure.Unit())
	requireEq(t, Length.MustUnit("m"), Metre)
	requireEq(t, Mass.MustUnit("kg"), Kg)
}

func TestPrefixUnits(t *testing.T) {
	must := mustVal(t)
	requireEq(t, Km, must(types.Mul(types.Scalar(1000), Metre)))
	requireEq(t, Cm, must(types.Div(Metre, types.Scalar(100))))
	requireEq(t, Mm, must(types.Div(Metre, types.Scalar(1000))))
	requireEq(t, Minute, must(types.Mul(types.Scalar(60), Second)))
	requireEq(t, Hour, must(types.Mul(types.Scalar(60), Minute)))
	requireEq(t, Gram, must(types.Div(Kg, types.Scalar(1000))))
}

func TestTemperatureConversions(t *testing.T) {
	must := mustVal(t)
	requireEq(t, FromCelsius(0), must(types.Mul(types.Scalar(273.15), Kelvin)))
	require.InDelta(t, FromCelsius(0).Magnitude, FromFahrenheit(32).Magnitude, 1e-9)
	require.True(t, Temperature.Contains(FromFahrenheit(100)))
}
