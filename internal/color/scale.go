package color

// LightnessScale returns count Lab colors stepping through lightness around v.
// The middle entry (index count/2) is v itself; entry i moves L by
// (i-count/2)*step, the shift capped at ±100 and L kept within [0,100].
func LightnessScale(v Value, count int, step float64) []Value {
	if count <= 0 {
		return nil
	}
	base := v.Convert(Lab)
	mid := count / 2

	out := make([]Value, count)
	for i := range out {
		if i == mid {
			out[i] = base
			continue
		}
		delta := clamp(float64(i-mid)*step, -100, 100)
		c := base.comps
		c[0] = clamp(c[0]+delta, 0, 100)
		out[i] = Value{unit: Lab, comps: c}
		out[i].raw = out[i].String()
	}
	return out
}
