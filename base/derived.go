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

// Derived quantities. The conventional names (Hz, Newton, Pascal, ...) are
// aliases for the mechanically derived canonical units; Volume's canonical
// unit is conventionally named, with the derived name kept as an alias.
var (
	Area         = Length.Pow(2)
	Volume       = Length.Pow(3)
	Frequency    = Time.Pow(-1)
	Force        = Length.Mul(Mass).Div(Time.Pow(2))
	Pressure     = Mass.Div(Length).Div(Time.Pow(2))
	Velocity     = Length.Div(Time)
	Acceleration = Length.Div(Time.Pow(2))
)

func init() {
	Volume.RenameUnit("metre_cubic")
	Frequency.Alias("Hz")
	Force.Alias("Newton", "N")
	Pressure.Alias("Pascal", "Pa")
}
