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

func TestUsage(t *testing.T) {
	must := mustVal(t)
	L, err := New("Length", []Decl{
		{"metre", UNIT},
		{"kilometre", types.Scalar(1000)},
	})
	require.NoError(t, err)
	T := MustNew("Time", []Decl{{"second", UNIT}})

	m, s := L.Unit(), T.Unit()
	km := L.MustUnit("kilometre")

	require.True(t, L.Contains(m))
	require.False(t, L.Contains(types.Scalar(1)))
	require.True(t, T.Contains(s))

	requireEq(t, types.Neg(km), must(types.Mul(types.Scalar(-1), km)))
	requireEq(t, types.Neg(km), types.Neg(must(types.Mul(types.Scalar(1000), m))))
	requireEq(t, types.Pos(km), km)

	Speed := L.Div(T)
	ms := must(types.Div(m, s))
	require.True(t, Speed.Contains(ms))
	require.False(t, T.Contains(m))

	_, ok := L.Div(T).Named("metre_per_second")
	require.True(t, ok)

	requireEq(t,
		must(types.Mul(types.Scalar(10), km)),
		must(types.Mul(types.Scalar(10000), m)))

	lt, err := types.Lt(m, km)
	require.NoError(t, err)
	require.True(t, lt)

	_, err = types.Add(types.Scalar(10), must(types.Mul(types.Scalar(10), km)))
	require.Error(t, err)
	_, err = types.Add(m, s)
	require.Error(t, err)

	requireEq(t, Speed.MustUnit("metre_per_second"), ms)
}

// L/T*T is structurally Length again, but its named units are those of the
// composition chain, not of L/(T*T).
func TestAttributeAsymmetry(t *testing.T) {
	L := MustNew("Length", []Decl{{"metre", UNIT}})
	T := MustNew("Time", []Decl{{"second", UNIT}})

	Acceleration := L.Div(T.Mul(T))
	_, ok := Acceleration.Named("metre_per_second_squared")
	require.True(t, ok)

	NotAcceleration := L.Div(T).Mul(T)
	_, ok = NotAcceleration.Named("metre_per_second_second")
	require.True(t, ok)
	_, ok = NotAcceleration.Named("metre_per_second_squared")
	require.False(t, ok)

	require.True(t, NotAcceleration.Equal(L), "it is the same as Length")
}

func TestEffort(t *testing.T) {
	Workforce := MustNew("Workforce", []Decl{{"men", UNIT}})
	Time := MustNew("Time", []Decl{{"second", UNIT}})

	// The canonical unit of a composed quantity type is built from the
	// canonical units of the operands, but the usual unit of effort is
	// men-hour, so it is re-introduced.
	Effort, err := Workforce.Mul(Time).Extend("Effort", []Decl{
		{"men_hour", types.Scalar(3600)},
	})
	require.NoError(t, err)

	require.Equal(t, "men_second", Effort.UnitName())
	require.Equal(t, 1.0, Effort.Unit().Magnitude)

	gt, err := types.Gt(Effort.MustUnit("men_hour"), Effort.MustUnit("men_second"))
	require.NoError(t, err)
	require.True(t, gt)
}

func TestCanonicalUnitIdentity(t *testing.T) {
	dims := []*Dimension{
		MustNew("Length", []Decl{{"metre", UNIT}}),
		MustNew("Workforce", []Decl{{"men", UNIT}}, WithUnitAlias("man")),
		Scalar,
	}
	L, T := dims[0], MustNew("Time", []Decl{{"second", UNIT}})
	dims = append(dims, L.Div(T), L.Pow(3), T.Recip())

	for _, d := range dims {
		require.Equal(t, 1.0, d.Unit().Magnitude)
		requireEq(t, d.Unit(), types.Quantity{Magnitude: 1, Signature: d.Signature()})
	}
}

func TestUnitAliases(t *testing.T) {
	Workforce := MustNew("Workforce", []Decl{{"men", UNIT}}, WithUnitAlias("man"))
	requireEq(t, Workforce.MustUnit("man"), Workforce.Unit())

	Mass := MustNew("Mass", []Decl{{"kilogram", UNIT}}, WithUnitAliases("kg", "kgs"))
	requireEq(t, Mass.MustUnit("kg"), Mass.Unit())
	requireEq(t, Mass.MustUnit("kgs"), Mass.Unit())
}

func TestRenameUnit(t *testing.T) {
	L := MustNew("Length", []Decl{{"metre", UNIT}})
	Volume := L.Pow(3).RenameUnit("metre_cubic")

	require.Equal(t, "metre_cubic", Volume.UnitName())
	requireEq(t, Volume.MustUnit("metre_pow_3"), Volume.Unit())
	// The signature is untouched, so a recreated cube still matches.
	require.True(t, Volume.Equal(L.Pow(3)))
}

func TestRecreatedDimensionsInteroperate(t *testing.T) {
	first := MustNew("Length", []Decl{{"metre", UNIT}})
	second := MustNew("Length", []Decl{{"metre", UNIT}})

	require.True(t, first.Equal(second))
	requireEq(t, first.Unit(), second.Unit())

	// Same dimension name, different unit name: a different signature.
	other := MustNew("Length", []Decl{{"km", UNIT}})
	require.False(t, first.Equal(other))
	_, err := types.Eq(first.Unit(), other.Unit())
	require.Error(t, err)
	_, err = types.Lt(first.Unit(), other.Unit())
	require.Error(t, err)
}

func TestConstructionErrors(t *testing.T) {
	_, err := New("Length", []Decl{
		{"metre", UNIT},
		{"metre2", UNIT},
	})
	require.ErrorContains(t, err, "quantity with multiple units")

	_, err = New("Length", []Decl{{"half", types.Scalar(0.5)}})
	require.ErrorContains(t, err, "dimension without a unit")

	_, err = New("Length", nil)
	require.ErrorContains(t, err, "dimension without a unit")

	_, err = New("Length", []Decl{{"metre", nil}})
	require.ErrorContains(t, err, "dimension without a unit")

	L := MustNew("Length", []Decl{{"m", UNIT}})
	_, err = L.Extend("LL", []Decl{{"mm", UNIT}})
	require.ErrorContains(t, err, "quantity with multiple units")
}

func TestDeclaredBeforeUnit(t *testing.T) {
	must := mustVal(t)
	// A scalar declared ahead of the canonical unit is still denominated in
	// the canonical unit.
	L := MustNew("Length", []Decl{
		{"kilometre", types.Scalar(1000)},
		{"metre", UNIT},
	})
	requireEq(t, L.MustUnit("kilometre"), must(types.Mul(types.Scalar(1000), L.Unit())))
}
