package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a parsed color tagged with its unit. The only ways to obtain one
// are the Parse functions and Convert, so every Value passed its unit's
// validation when it entered the program.
type Value struct {
	unit     Unit
	comps    [3]float64
	alpha    float64
	hasAlpha bool
	raw      string
}

// Unit returns the coordinate system of v.
func (v Value) Unit() Unit { return v.unit }

// Raw returns the string v was parsed from, or its canonical form when v
// was produced by a conversion.
func (v Value) Raw() string { return v.raw }

// Components returns the numeric fields of v in unit order. RGBA values and
// hex values converted from RGBA carry the alpha fraction as a fourth field.
func (v Value) Components() []float64 {
	out := []float64{v.comps[0], v.comps[1], v.comps[2]}
	if v.hasAlpha {
		out = append(out, v.alpha)
	}
	return out
}

// Alpha returns the alpha fraction in [0,1] and whether v carries one.
func (v Value) Alpha() (float64, bool) {
	return v.alpha, v.hasAlpha
}

// String formats v canonically: "#rrggbb" for hex and "unit(a, b, c)" for
// the rest, with unrounded components.
func (v Value) String() string {
	switch v.unit {
	case Hex:
		return formatHex(v.comps, v.alpha, v.hasAlpha)
	case RGBA:
		return fmt.Sprintf("rgba(%s, %s, %s, %s%%)",
			formatNumber(v.comps[0]), formatNumber(v.comps[1]), formatNumber(v.comps[2]),
			formatNumber(alphaPercent(v.alpha)))
	}
	return fmt.Sprintf("%s(%s, %s, %s)", v.unit,
		formatNumber(v.comps[0]), formatNumber(v.comps[1]), formatNumber(v.comps[2]))
}

// Rounded returns v with its components rounded to the given number of
// decimals, for display. Alpha is left alone.
func (v Value) Rounded(decimals int) Value {
	for i := range v.comps {
		v.comps[i] = Round(v.comps[i], decimals)
	}
	v.raw = v.String()
	return v
}

// HSL returns v converted to HSL components.
func (v Value) HSL() HSLColor {
	c := v.Convert(HSL).comps
	return HSLColor{H: c[0], S: c[1], L: c[2]}
}

func newValue(unit Unit, comps [3]float64, raw string) Value {
	return Value{unit: unit, comps: comps, raw: raw}
}

// formatHex writes channels as lowercase two-digit hex. Channels are rounded
// and clamped to [0,255]. A fully opaque alpha is omitted; otherwise the alpha
// is appended as a two-digit decimal percentage, e.g. "#00000050" for 50% and
// "#00000005" for 5%.
func formatHex(c [3]float64, alpha float64, hasAlpha bool) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, ch := range c {
		fmt.Fprintf(&b, "%02x", clampByte(ch))
	}
	if hasAlpha {
		if pct := math.Round(alpha * 100); pct != 100 {
			fmt.Fprintf(&b, "%02d", int(pct))
		}
	}
	return b.String()
}

// alphaPercent returns a as a percentage kept to two decimals, so 0.3 prints
// as 30 and not 30.000000000000004.
func alphaPercent(a float64) float64 {
	return math.Round(a*1e4) / 100
}

func clampByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// formatNumber prints f as the shortest decimal that round-trips, switching to
// exponent form below 1e-6 and at or above 1e21 ("5.89e-9", not "5.89e-09").
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
