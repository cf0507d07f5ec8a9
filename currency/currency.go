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

// currency provides concrete numbers for money.
//
// You may have 10 dollars and 5 euros in your wallet; that does not mean you
// have 15 of anything. Each currency is its own dimension, so amounts of
// different currencies cannot be added or compared until one is exchanged
// into the other through a rate:
//
//	dollar := currency.Unit("USD")
//	euro := currency.Unit("EUR")
//	perEuro, _ := types.Div(dollar, euro) // {USD}/{EUR}
//	rate, _ := types.Mul(types.Scalar(1.19196), perEuro)
//
// Currency names are case-insensitive and are not checked against ISO 4217.
// No rates are downloaded from anywhere.
package currency

import (
	"strings"
	"sync"

	"github.com/wdamron/dim/types"
)

var (
	mu    sync.Mutex
	units = map[string]types.Quantity{}
)

// Unit returns the canonical quantity for the named currency, interning the
// currency on first use. Names are case-insensitive: Unit("usd") and
// Unit("USD") denote the same currency.
func Unit(name string) types.Quantity {
	name = strings.ToUpper(name)
	mu.Lock()
	defer mu.Unlock()
	q, ok := units[name]
	if !ok {
		q = types.Quantity{Magnitude: 1, Signature: types.NewSignature([]string{name}, nil)}
		units[name] = q
	}
	return q
}

func registered(tok string) bool {
	mu.Lock()
	defer mu.Unlock()
	_, ok := units[tok]
	return ok
}

// Valuation reports whether v is an amount of exactly one currency. Even a
// zero amount of dollars is a valuation, but a dollar/dollar ratio is not:
// it has downgraded to a bare number.
func Valuation(v types.Value) bool {
	q, ok := v.(types.Quantity)
	if !ok {
		return false
	}
	top, bottom := q.Signature.Top(), q.Signature.Bottom()
	return len(top) == 1 && len(bottom) == 0 && registered(top[0])
}

// Rate reports whether v is an exchange rate: a quantity whose signature is
// exactly one currency over another.
func Rate(v types.Value) bool {
	q, ok := v.(types.Quantity)
	if !ok {
		return false
	}
	top, bottom := q.Signature.Top(), q.Signature.Bottom()
	return len(top) == 1 && len(bottom) == 1 && registered(top[0]) && registered(bottom[0])
}
