package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTone is returned by ParseTone for names outside the tone table.
var ErrUnknownTone = errors.New("unknown tone")

// HSLColor holds hue in degrees and saturation/lightness in percent.
type HSLColor struct {
	H, S, L float64
}

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ToneRange is a closed rectangle in saturation/lightness space.
type ToneRange struct {
	Saturation Range
	Lightness  Range
}

// Contains reports whether c falls inside the rectangle. Hue is ignored.
func (t ToneRange) Contains(c HSLColor) bool {
	return t.Saturation.Contains(c.S) && t.Lightness.Contains(c.L)
}

// Tone names an aesthetic family of colors.
type Tone int

const (
	Earth Tone = iota
	Fluorescent
	Jewel
	Neutral
	Pastel
	Shades
	// Custom means no single named tone covers the colors.
	Custom
)

var toneNames = [...]string{
	Earth:       "earth",
	Fluorescent: "fluorescent",
	Jewel:       "jewel",
	Neutral:     "neutral",
	Pastel:      "pastel",
	Shades:      "shades",
	Custom:      "custom",
}

// toneRanges is indexed by Tone and doubles as the classification priority:
// ranges overlap, and the first match wins.
var toneRanges = [...]ToneRange{
	Earth:       {Saturation: Range{36, 41}, Lightness: Range{36, 77}},
	Fluorescent: {Saturation: Range{63, 100}, Lightness: Range{82, 100}},
	Jewel:       {Saturation: Range{73, 83}, Lightness: Range{56, 76}},
	Neutral:     {Saturation: Range{1, 10}, Lightness: Range{70, 99}},
	Pastel:      {Saturation: Range{14, 21}, Lightness: Range{89, 96}},
	Shades:      {Saturation: Range{0, 0}, Lightness: Range{0, 100}},
}

// NamedTones lists the tones that have a range, in priority order.
var NamedTones = []Tone{Earth, Fluorescent, Jewel, Neutral, Pastel, Shades}

func (t Tone) String() string {
	if t < 0 || int(t) >= len(toneNames) {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneNames[t]
}

// ParseTone resolves a tone name, case-insensitively. "shade" is accepted for Shades.
func ParseTone(name string) (Tone, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "shade" {
		return Shades, nil
	}
	for t, s := range toneNames {
		if s == n {
			return Tone(t), nil
		}
	}
	return Custom, fmt.Errorf("%w: %q", ErrUnknownTone, name)
}

// Range returns the saturation/lightness rectangle of t. Custom has none.
func (t Tone) Range() (ToneRange, bool) {
	if t < 0 || int(t) >= len(toneRanges) {
		return ToneRange{}, false
	}
	return toneRanges[t], true
}

// ToneOf returns the first tone, in priority order, whose range contains c,
// or Custom when none does.
func ToneOf(c HSLColor) Tone {
	for _, t := range NamedTones {
		if toneRanges[t].Contains(c) {
			return t
		}
	}
	return Custom
}

// ClassifyTone returns the tone shared by every color in colors. A single
// unmatched color, any disagreement, or an empty batch yields Custom.
func ClassifyTone(colors []HSLColor) Tone {
	if len(colors) == 0 {
		return Custom
	}
	tone := ToneOf(colors[0])
	for _, c := range colors[1:] {
		if tone == Custom {
			break
		}
		if ToneOf(c) != tone {
			return Custom
		}
	}
	return tone
}

// ClassifyValues converts each value to HSL and classifies the batch.
func ClassifyValues(values []Value) Tone {
	colors := make([]HSLColor, len(values))
	for i, v := range values {
		colors[i] = v.HSL()
	}
	return ClassifyTone(colors)
}
