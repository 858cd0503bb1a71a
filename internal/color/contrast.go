package color

import "math"

// RelativeLuminance returns the WCAG relative luminance of v in [0,1].
// Channels outside [0,255] (from out-of-gamut conversions) are used as is.
func RelativeLuminance(v Value) float64 {
	c := v.Convert(RGB).comps
	var lum [3]float64
	for i, ch := range c {
		s := ch / 255
		if s <= 0.03928 {
			lum[i] = s / 12.92
		} else {
			lum[i] = math.Pow((s+0.055)/1.055, 2.4)
		}
	}
	return lum[0]*0.2126 + lum[1]*0.7152 + lum[2]*0.0722
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1 to 21.
// The order of the arguments does not matter.
func ContrastRatio(a, b Value) float64 {
	l1, l2 := RelativeLuminance(a), RelativeLuminance(b)
	if l1 > l2 {
		return (l1 + 0.05) / (l2 + 0.05)
	}
	return (l2 + 0.05) / (l1 + 0.05)
}

// ContrastFromHex parses two hex colors and returns their contrast ratio
// rounded to precision decimals.
func ContrastFromHex(hex1, hex2 string, precision int) (float64, error) {
	a, err := ParseHex(hex1)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hex2)
	if err != nil {
		return 0, err
	}
	return Round(ContrastRatio(a, b), precision), nil
}

// Round rounds f half away from zero to the given number of decimals.
func Round(f float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}
