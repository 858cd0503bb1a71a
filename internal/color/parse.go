package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// sniffOrder is the prefix check order; rgba( must be tried before rgb(.
var sniffOrder = []Unit{Hex, RGBA, RGB, HSL, Lab, LCh, XYZ}

// DetectUnit returns the unit named by the prefix of s.
func DetectUnit(s string) (Unit, error) {
	for _, u := range sniffOrder {
		if strings.HasPrefix(s, u.prefix()) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// ParseString detects the unit of s from its prefix ("#", "rgb(", "rgba(",
// "hsl(", "lab(", "lch(", "xyz(") and parses it. An unrecognized prefix fails
// with ErrInvalidFormat; a malformed body fails with that unit's error.
func ParseString(s string) (Value, error) {
	u, err := DetectUnit(s)
	if err != nil {
		return Value{}, err
	}
	return Parse(u, s)
}

// Parse parses s as unit u without looking at its prefix.
func Parse(u Unit, s string) (Value, error) {
	switch u {
	case Hex:
		return ParseHex(s)
	case RGB:
		return ParseRGB(s)
	case RGBA:
		return ParseRGBA(s)
	case HSL:
		return ParseHSL(s)
	case Lab:
		return ParseLab(s)
	case LCh:
		return ParseLCh(s)
	case XYZ:
		return ParseXYZ(s)
	}
	return Value{}, fmt.Errorf("%w: %v", ErrUnknownUnit, u)
}

// ParseHex parses "#rrggbb", "rrggbb" or the "#rgb" shorthand.
func ParseHex(s string) (Value, error) {
	c, ok := scanHex(s)
	if !ok {
		return Value{}, invalid(Hex, s)
	}
	return newValue(Hex, c, s), nil
}

// ParseRGB parses "rgb(r, g, b)" with channels in [0,255].
func ParseRGB(s string) (Value, error) {
	c, ok := scanDomain(s, rgbDomain)
	if !ok {
		return Value{}, invalid(RGB, s)
	}
	return newValue(RGB, c, s), nil
}

// ParseRGBA parses "rgba(r, g, b, a)". The alpha may be a fraction ("0.5")
// or a percentage ("50%"); it is stored as a fraction.
func ParseRGBA(s string) (Value, error) {
	c, ok := scanRGBA(s)
	if !ok {
		return Value{}, invalid(RGBA, s)
	}
	v := newValue(RGBA, [3]float64{c[0], c[1], c[2]}, s)
	v.alpha, v.hasAlpha = c[3], true
	return v, nil
}

// ParseHSL parses "hsl(h, s, l)"; "%" suffixes are allowed.
func ParseHSL(s string) (Value, error) {
	c, ok := scanDomain(s, hslDomain)
	if !ok {
		return Value{}, invalid(HSL, s)
	}
	return newValue(HSL, c, s), nil
}

// ParseLab parses "lab(l, a, b)".
func ParseLab(s string) (Value, error) {
	c, ok := scanDomain(s, labDomain)
	if !ok {
		return Value{}, invalid(Lab, s)
	}
	return newValue(Lab, c, s), nil
}

// ParseLCh parses "lch(l, c, h)". Only arity and non-zero components are checked.
func ParseLCh(s string) (Value, error) {
	c, ok := scanNonZero(s)
	if !ok {
		return Value{}, invalid(LCh, s)
	}
	return newValue(LCh, c, s), nil
}

// ParseXYZ parses "xyz(x, y, z)". Only arity and non-zero components are checked.
func ParseXYZ(s string) (Value, error) {
	c, ok := scanNonZero(s)
	if !ok {
		return Value{}, invalid(XYZ, s)
	}
	return newValue(XYZ, c, s), nil
}

// canonicalHex is a six-digit hex color with an optional two-digit alpha
// percentage, as written by Value.String.
var canonicalHex = regexp.MustCompile(`^#([0-9a-fA-F]{6})([0-9]{2})?$`)

// ParseCanonical parses the form written by Value.String. Components are read
// as floats and no domain rule is applied, so the result of any conversion
// parses back to the same components: out-of-gamut RGB, sub-unit XYZ and
// zero-chroma LCh included. User input belongs in ParseString.
func ParseCanonical(s string) (Value, error) {
	u, err := DetectUnit(s)
	if err != nil {
		return Value{}, err
	}
	if u == Hex {
		return parseCanonicalHex(s)
	}

	body, ok := strings.CutPrefix(s, u.prefix())
	if ok {
		body, ok = strings.CutSuffix(body, ")")
	}
	if !ok {
		return Value{}, invalid(u, s)
	}
	parts := strings.Split(body, ",")
	want := 3
	if u == RGBA {
		want = 4
	}
	if len(parts) != want {
		return Value{}, invalid(u, s)
	}

	var comps [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[i]), "%"), 64)
		if err != nil {
			return Value{}, invalid(u, s)
		}
		comps[i] = f
	}
	v := newValue(u, comps, s)
	if u == RGBA {
		tok := strings.TrimSpace(parts[3])
		pct, isPct := strings.CutSuffix(tok, "%")
		a, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return Value{}, invalid(u, s)
		}
		if isPct {
			a /= 100
		}
		v.alpha, v.hasAlpha = a, true
	}
	return v, nil
}

func parseCanonicalHex(s string) (Value, error) {
	m := canonicalHex.FindStringSubmatch(s)
	if m == nil || m[2] == "" {
		return ParseHex(s)
	}
	c, _ := scanHex(m[1])
	v := newValue(Hex, c, s)
	pct, _ := strconv.Atoi(m[2])
	v.alpha, v.hasAlpha = float64(pct)/100, true
	return v, nil
}

func invalid(u Unit, s string) error {
	return fmt.Errorf("%w: %q", u.formatErr(), s)
}
