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
	"strconv"
	"strings"
)

// Renderings below are stable enough to serve as a debugging/display format;
// they are not guaranteed machine-parseable. Tokens appear in sorted order
// with multiplicities expanded.

// String returns a string representation of a Signature: `{top}/{bottom}`.
func (s Signature) String() string {
	var sb strings.Builder
	writeSide(&sb, s.top)
	sb.WriteByte('/')
	writeSide(&sb, s.bottom)
	return sb.String()
}

func writeSide(sb *strings.Builder, side sigSet) {
	sb.WriteByte('{')
	first := true
	side.each(func(tok string, n int) bool {
		for i := 0; i < n; i++ {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(tok)
			first = false
		}
		return true
	})
	sb.WriteByte('}')
}

// String returns a string representation of a Quantity:
// `<magnitude>::{top}/{bottom}`.
func (q Quantity) String() string {
	return formatMag(q.Magnitude) + "::" + q.Signature.String()
}

// String returns a string representation of a Scalar.
func (s Scalar) String() string { return formatMag(float64(s)) }

func formatMag(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
