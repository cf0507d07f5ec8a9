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

// dim provides dimensional analysis over concrete numbers: real magnitudes
// denominated by unit signatures.
//
// A dimension (or quantity type) is declared from a canonical unit and any
// number of derived units:
//
//	Length, err := dim.New("Length", []dim.Decl{
//		{"metre", dim.UNIT},
//		{"kilometre", types.Scalar(1000)},
//	})
//
// Each dimension has exactly one canonical unit, with magnitude exactly 1;
// every quantity in the dimension is expressed in terms of it. Arithmetic on
// quantities enforces dimensional homogeneity: only quantities of equal
// signature may be added, subtracted, or compared, while ratios and products
// of incommensurable quantities derive new signatures. A quantity whose
// signature fully cancels is downgraded to a bare number, so km/km is
// a plain 1.
//
// Dimensions themselves combine with Mul, Div, Pow and Recip to form
// composite dimensions (Length/Time, Length^3, ...), each with a
// mechanically derived canonical unit (metre_per_second, metre_pow_3, ...).
//
//
// Supported Features:
//
//   - Declarative dimension construction with unit aliases
//   - Automatic one-to-one signature cancellation
//   - Dimensional-homogeneity enforcement with descriptive operand errors
//   - Automatic downgrade of fully-cancelled quantities to bare numbers
//   - Dimension-level algebra producing composite dimensions on demand
//   - Signature-based dimension membership checks
//   - Interoperable re-creation of dimensions by (name, unit) identity
//
//
// Links:
//
// Concrete numbers: https://en.wikipedia.org/wiki/Concrete_number
//
// Dimensional homogeneity: https://en.wikipedia.org/wiki/Dimensional_analysis#Dimensional_homogeneity
//
// International System of Quantities: https://en.wikipedia.org/wiki/International_System_of_Quantities
package dim
