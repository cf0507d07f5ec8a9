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
	"github.com/zeebo/errs"
)

// Error is the class of all errors raised by quantity arithmetic.
var Error = errs.Class("quantity")

// opErr reports an operation over incompatible operands, naming the operator
// and both operand descriptions.
func opErr(op string, a, b Value) error {
	return Error.New("unsupported operand type(s) for %s: '%s' and '%s'", op, operand(a), operand(b))
}

// operand describes a value for diagnostics: quantities by their signature,
// anything else by its kind.
func operand(v Value) string {
	if v == nil {
		return "nil"
	}
	if q, ok := v.(Quantity); ok {
		return q.Signature.String()
	}
	return v.ValueName()
}
