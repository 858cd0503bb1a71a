package color

import "math"

// Brighten returns v with its HSL lightness raised by percentage (0.1 = ten
// points), expressed in v's own unit.
func Brighten(v Value, percentage float64) Value {
	return shiftLightness(v, percentage*100)
}

// Darken returns v with its HSL lightness lowered by percentage.
func Darken(v Value, percentage float64) Value {
	return shiftLightness(v, -percentage*100)
}

func shiftLightness(v Value, delta float64) Value {
	hsl := v.Convert(HSL)
	hsl.comps[2] = clamp(hsl.comps[2]+delta, 0, 100)
	hsl.alpha, hsl.hasAlpha = v.alpha, v.hasAlpha
	out := hsl.Convert(v.unit)
	if v.unit == HSL {
		// Convert returned hsl unchanged, alpha included.
		out.alpha, out.hasAlpha = 0, false
	}
	out.raw = out.String()
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
