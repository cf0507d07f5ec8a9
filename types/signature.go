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

// Signature is the layout of the unit kinds that compose a quantity: a
// numerator (top) and a denominator (bottom) multiset of unit tokens,
// rendered as `{top}/{bottom}`.
//
// Tokens appearing on both sides cancel one-to-one during construction, so a
// signature never carries the same token in both top and bottom. Bare
// numbers carry the empty signature `{}/{}`.
//
// Signatures are immutable values: every operation returns a new Signature.
// Signatures have no ordering relation. The zero Signature is the empty
// (scalar) signature.
type Signature struct {
	top    sigSet
	bottom sigSet
}

// EmptySignature is the signature of bare numbers: `{}/{}`.
var EmptySignature = Signature{}

// NewSignature builds a signature from top and bottom token sequences.
// Order is irrelevant and duplicates are allowed; matching tokens are
// cancelled one-to-one:
//
//	NewSignature([]string{"a", "b", "c", "x", "a"}, []string{"b", "x", "a", "y"})
//	// => {a, c}/{y}
func NewSignature(top, bottom []string) Signature {
	tc := make(map[string]int, len(top))
	for _, tok := range top {
		tc[tok]++
	}
	bc := make(map[string]int, len(bottom))
	for _, tok := range bottom {
		bc[tok]++
	}
	return makeSignature(tc, bc)
}

// makeSignature cancels matching tokens one-to-one, then freezes both sides.
func makeSignature(top, bottom map[string]int) Signature {
	tc := make(map[string]int, len(top))
	for tok, n := range top {
		if m := bottom[tok]; n > m {
			tc[tok] = n - m
		}
	}
	bc := make(map[string]int, len(bottom))
	for tok, m := range bottom {
		if n := top[tok]; m > n {
			bc[tok] = m - n
		}
	}
	return Signature{top: makeSigSet(tc), bottom: makeSigSet(bc)}
}

// Mul combines two signatures as a product: tops are joined with tops and
// bottoms with bottoms, then cancellation is applied.
func (s Signature) Mul(o Signature) Signature {
	top := s.top.counts()
	o.top.each(func(tok string, n int) bool {
		top[tok] += n
		return true
	})
	bottom := s.bottom.counts()
	o.bottom.each(func(tok string, n int) bool {
		bottom[tok] += n
		return true
	})
	return makeSignature(top, bottom)
}

// Div combines two signatures as a quotient: the divisor is flipped, then
// the product rule applies.
func (s Signature) Div(o Signature) Signature {
	return s.Mul(o.Recip())
}

// Recip swaps top and bottom.
func (s Signature) Recip() Signature {
	return Signature{top: s.bottom, bottom: s.top}
}

// Pow raises the signature to an integer power. A zero exponent yields the
// empty signature; a negative exponent is the reciprocal of the positive
// power. A signature is already cancelled, so scaling the multiplicities
// preserves cancellation.
func (s Signature) Pow(n int) Signature {
	switch {
	case n == 0:
		return EmptySignature
	case n < 0:
		return s.Pow(-n).Recip()
	}
	top := s.top.counts()
	for tok := range top {
		top[tok] *= n
	}
	bottom := s.bottom.counts()
	for tok := range bottom {
		bottom[tok] *= n
	}
	return Signature{top: makeSigSet(top), bottom: makeSigSet(bottom)}
}

// Equal reports multiset equality of both sides: insensitive to order,
// sensitive to multiplicity.
func (s Signature) Equal(o Signature) bool {
	return s.top.equal(o.top) && s.bottom.equal(o.bottom)
}

// IsScalar reports whether both sides are empty.
func (s Signature) IsScalar() bool {
	return s.top.isEmpty() && s.bottom.isEmpty()
}

// Top expands the numerator into a sorted slice, repeating each token by its
// multiplicity.
func (s Signature) Top() []string { return s.top.tokens() }

// Bottom expands the denominator into a sorted slice, repeating each token
// by its multiplicity.
func (s Signature) Bottom() []string { return s.bottom.tokens() }
