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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/dim/types"
)

// UNIT marks the canonical unit in a dimension declaration.
const UNIT = types.Scalar(1)

// Decl binds a name to a value within a dimension declaration. The value is
// either UNIT (this name is the canonical unit), a bare Scalar expressed in
// canonical units, or a ready-made Quantity that passes through unchanged.
type Decl struct {
	Name  string
	Value types.Value
}

// Dimension is a quantity type: a classifier for the quantities sharing one
// signature. Dimensions are immutable after definition time and may be
// freely shared across goroutines.
type Dimension struct {
	name     string
	unitName string
	sig      types.Signature
	units    *immutable.SortedMap // name -> types.Quantity
}

var emptyUnits = immutable.NewSortedMap(nil)

type options struct {
	aliases []string
}

// Option configures New.
type Option func(*options)

// WithUnitAlias binds an additional name to the canonical unit.
func WithUnitAlias(name string) Option {
	return func(o *options) { o.aliases = append(o.aliases, name) }
}

// WithUnitAliases binds additional names to the canonical unit.
func WithUnitAliases(names ...string) Option {
	return func(o *options) { o.aliases = append(o.aliases, names...) }
}

// New defines a dimension from an ordered list of unit declarations.
//
// Exactly one declaration must be the canonical unit: either the literal
// UNIT, or (when the dimension is derived from other dimensions) the first
// Quantity-valued declaration with magnitude 1. Scalar-valued declarations
// are wrapped as quantities denominated in the canonical unit, wherever they
// appear in the list. Quantity-valued declarations pass through unchanged.
//
// The canonical unit's token is derived from the dimension name and the unit
// name, so a dimension recreated with the same two names interoperates with
// the original.
func New(name string, decls []Decl, opts ...Option) (*Dimension, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	unit, sig, err := scanUnit(name, decls)
	if err != nil {
		return nil, err
	}

	b := immutable.NewSortedMapBuilder(emptyUnits)
	for _, d := range decls {
		switch v := d.Value.(type) {
		case types.Scalar:
			b.Set(d.Name, types.Quantity{Magnitude: float64(v), Signature: sig})
		case types.Quantity:
			b.Set(d.Name, v)
		default:
			return nil, Error.New("invalid value for unit %s of %s", d.Name, name)
		}
	}

	d := &Dimension{name: name, unitName: unit, sig: sig, units: b.Map()}
	if len(o.aliases) > 0 {
		d.Alias(o.aliases...)
	}
	return d, nil
}

// scanUnit finds the canonical unit and derives the dimension signature.
func scanUnit(name string, decls []Decl) (string, types.Signature, error) {
	unit := ""
	var sig types.Signature
	seeded := false
	for _, d := range decls {
		switch v := d.Value.(type) {
		case types.Scalar:
			if v != UNIT {
				continue
			}
			if unit != "" || seeded {
				return "", sig, Error.New("quantity with multiple units")
			}
			unit = d.Name
			sig = types.NewSignature([]string{tag(name, d.Name)}, nil)
		case types.Quantity:
			// A seed quantity carries the signature of a dimension built
			// from operations on other dimensions; the first such value
			// with magnitude 1 is the canonical unit.
			if unit != "" || seeded {
				continue
			}
			sig, seeded = v.Signature, true
			if v.Magnitude == 1 {
				unit = d.Name
			}
		}
	}
	if unit == "" {
		return "", sig, Error.New("dimension without a unit")
	}
	return unit, sig, nil
}

// MustNew is New, panicking on error. Intended for package-level dimension
// definitions.
func MustNew(name string, decls []Decl, opts ...Option) *Dimension {
	d, err := New(name, decls, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// newDerived builds a dimension around a single seed quantity, as produced
// by dimension-level operators.
func newDerived(name, unitName string, q types.Quantity) *Dimension {
	return &Dimension{
		name:     name,
		unitName: unitName,
		sig:      q.Signature,
		units:    emptyUnits.Set(unitName, q),
	}
}

// Extend derives a new dimension from d, attaching further named units. The
// canonical unit and signature are inherited; Scalar-valued declarations are
// wrapped with the inherited signature. Declaring another canonical unit is
// an error.
func (d *Dimension) Extend(name string, decls []Decl) (*Dimension, error) {
	b := immutable.NewSortedMapBuilder(d.units)
	for _, dc := range decls {
		switch v := dc.Value.(type) {
		case types.Scalar:
			if v == UNIT {
				return nil, Error.New("quantity with multiple units")
			}
			b.Set(dc.Name, types.Quantity{Magnitude: float64(v), Signature: d.sig})
		case types.Quantity:
			b.Set(dc.Name, v)
		default:
			return nil, Error.New("invalid value for unit %s of %s", dc.Name, name)
		}
	}
	return &Dimension{name: name, unitName: d.unitName, sig: d.sig, units: b.Map()}, nil
}

// RenameUnit rebinds the canonical unit under a new name and returns d. The
// previous name remains a plain alias; the signature is unchanged, so the
// rename is invisible to arithmetic. Intended for definition time only.
func (d *Dimension) RenameUnit(name string) *Dimension {
	d.units = d.units.Set(name, d.Unit())
	d.unitName = name
	return d
}

// Alias binds additional names to the canonical unit and returns d. No new
// unit is created. Intended for definition time only.
func (d *Dimension) Alias(names ...string) *Dimension {
	m := d.units
	unit := d.Unit()
	for _, n := range names {
		m = m.Set(n, unit)
	}
	d.units = m
	return d
}

// Name returns the dimension's name.
func (d *Dimension) Name() string { return d.name }

// UnitName returns the name of the canonical unit.
func (d *Dimension) UnitName() string { return d.unitName }

// Signature returns the dimension's signature.
func (d *Dimension) Signature() types.Signature { return d.sig }

// Unit returns the canonical quantity: magnitude 1 denominated by the
// dimension's signature.
func (d *Dimension) Unit() types.Quantity {
	q, _ := d.Named(d.unitName)
	return q
}

// Named returns the quantity bound to a unit name within the dimension.
func (d *Dimension) Named(name string) (types.Quantity, bool) {
	v, ok := d.units.Get(name)
	if !ok {
		return types.Quantity{}, false
	}
	return v.(types.Quantity), true
}

// MustUnit is Named, panicking when the unit is not defined.
func (d *Dimension) MustUnit(name string) types.Quantity {
	q, ok := d.Named(name)
	if !ok {
		panic(Error.New("dimension %s has no unit %s", d.name, name))
	}
	return q
}

// Quantity returns mag canonical units of d.
func (d *Dimension) Quantity(mag float64) types.Quantity {
	return types.Quantity{Magnitude: mag, Signature: d.sig}
}

// Contains reports whether v is a quantity of this dimension: a Quantity
// whose signature equals the dimension's. Bare numbers belong to no
// dimension.
func (d *Dimension) Contains(v types.Value) bool {
	q, ok := v.(types.Quantity)
	return ok && q.Signature.Equal(d.sig)
}

// Equal reports whether two dimensions classify the same quantities, by
// signature equality.
func (d *Dimension) Equal(o *Dimension) bool {
	return d.sig.Equal(o.sig)
}

func (d *Dimension) String() string { return d.name }

func tag(name, unit string) string {
	return "<" + name + "." + unit + ">"
}
