package color

import "math"

// Edge formulas of the conversion graph. Each one is a single canonical
// transform between neighbouring units; the constants are kept verbatim so
// results stay comparable to recorded reference vectors.

// D65 reference white, 2° observer.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

// Thresholds and linear-branch constants of the CIE 1976 nonlinearity.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 0.137931034
	labCbrt    = 0.333333333
)

func rgbToXYZ(c [3]float64) [3]float64 {
	r := srgbToLinear(c[0]/255) * 100
	g := srgbToLinear(c[1]/255) * 100
	b := srgbToLinear(c[2]/255) * 100

	return [3]float64{
		r*0.4124 + g*0.3576 + b*0.1805,
		r*0.2126 + g*0.7152 + b*0.0722,
		r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// xyzToRGB returns channels on the 0–255 scale. Out-of-gamut input yields
// negative or >255 channels; they are not clamped.
func xyzToRGB(c [3]float64) [3]float64 {
	x := c[0] / 100
	y := c[1] / 100
	z := c[2] / 100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return [3]float64{
		linearToSRGB(r) * 255,
		linearToSRGB(g) * 255,
		linearToSRGB(b) * 255,
	}
}

// srgbToLinear decodes a single gamma-encoded sRGB component in [0,1].
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// linearToSRGB gamma-encodes a single linear component.
func linearToSRGB(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 0.41666667) - 0.055
	}
	return 12.92 * v
}

func xyzToLab(c [3]float64) [3]float64 {
	x := labCompress(c[0] / whiteX)
	y := labCompress(c[1] / whiteY)
	z := labCompress(c[2] / whiteZ)

	return [3]float64{
		116*y - 16,
		500 * (x - y),
		200 * (y - z),
	}
}

func labToXYZ(c [3]float64) [3]float64 {
	y := (c[0] + 16) / 116
	x := c[1]/500 + y
	z := y - c[2]/200

	return [3]float64{
		whiteX * labUncompress(x),
		whiteY * labUncompress(y),
		whiteZ * labUncompress(z),
	}
}

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, labCbrt)
	}
	return labKappa*t + labOffset
}

func labUncompress(t float64) float64 {
	if t3 := math.Pow(t, 3); t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}

// labToLCh maps (a, b) to polar form. Non-positive angles, including the
// zero vector, fold to 360 − |angle| rather than wrapping, so an achromatic
// color gets hue 360.
func labToLCh(c [3]float64) [3]float64 {
	a, b := c[1], c[2]
	chroma := math.Sqrt(a*a + b*b)

	h := math.Atan2(b, a)
	if h > 0 {
		h = (h / math.Pi) * 180
	} else {
		h = 360 - (math.Abs(h)/math.Pi)*180
	}

	return [3]float64{c[0], chroma, h}
}

const degToRad = 0.01745329251

func lchToLab(c [3]float64) [3]float64 {
	chroma, h := c[1], c[2]
	return [3]float64{
		c[0],
		math.Cos(h*degToRad) * chroma,
		math.Sin(h*degToRad) * chroma,
	}
}

// rgbToHSL returns h in [0,360) and s, l in [0,100].
func rgbToHSL(c [3]float64) [3]float64 {
	r, g, b := c[0]/255, c[1]/255, c[2]/255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return [3]float64{h * 360, s * 100, l * 100}
}

// hslToRGB returns unrounded channels on the 0–255 scale.
func hslToRGB(c [3]float64) [3]float64 {
	h := c[0] / 360
	s := c[1] / 100
	l := c[2] / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return [3]float64{r * 255, g * 255, b * 255}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// rgbToHex rounds channels to bytes; hex cannot carry fractions or
// out-of-gamut values.
func rgbToHex(c [3]float64) [3]float64 {
	return [3]float64{
		float64(clampByte(c[0])),
		float64(clampByte(c[1])),
		float64(clampByte(c[2])),
	}
}

func identity(c [3]float64) [3]float64 { return c }
