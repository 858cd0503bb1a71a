package color

import (
	"fmt"
	"math/rand/v2"
)

// RandomHSL draws a color with the given hue and saturation/lightness picked
// uniformly from sat and light.
func RandomHSL(r *rand.Rand, hue float64, sat, light Range) HSLColor {
	return HSLColor{
		H: hue,
		S: sat.Min + r.Float64()*(sat.Max-sat.Min),
		L: light.Min + r.Float64()*(light.Max-light.Min),
	}
}

// ToneSample draws n colors of the given hue from the rectangle of tone.
// Every sampled color classifies as tone unless a higher-priority range
// overlaps the sampled point.
func ToneSample(r *rand.Rand, tone Tone, hue float64, n int) ([]HSLColor, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample size must not be negative, got %d", n)
	}
	rng, ok := tone.Range()
	if !ok {
		return nil, fmt.Errorf("%w: %v has no range", ErrUnknownTone, tone)
	}
	out := make([]HSLColor, n)
	for i := range out {
		out[i] = RandomHSL(r, hue, rng.Saturation, rng.Lightness)
	}
	return out, nil
}

// Value returns c as an HSL Value, bypassing the integer tokenizer so
// fractional components survive.
func (c HSLColor) Value() Value {
	v := newValue(HSL, [3]float64{c.H, c.S, c.L}, "")
	v.raw = v.String()
	return v
}
