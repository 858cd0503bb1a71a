package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexDigits    = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	channelToken = regexp.MustCompile(`^` + numberPattern + `$`)
	alphaToken   = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)%?$`)
)

// Component domains enforced on ingestion.
var (
	rgbDomain = [3]Range{{0, 255}, {0, 255}, {0, 255}}
	hslDomain = [3]Range{{0, 360}, {0, 100}, {0, 100}}
	labDomain = [3]Range{{-100, 100}, {-125, 125}, {-125, 125}}
)

// IsValidHex reports whether s is 3 or 6 hex digits with an optional leading '#'.
func IsValidHex(s string) bool {
	_, ok := scanHex(s)
	return ok
}

// IsValidRGB reports whether s carries exactly three channels in [0,255].
func IsValidRGB(s string) bool {
	_, ok := scanDomain(s, rgbDomain)
	return ok
}

// IsValidRGBA reports whether s is rgba(r, g, b, a) with valid RGB channels and
// an alpha that is either a fraction in [0,1] or a percentage in [0,100]%.
func IsValidRGBA(s string) bool {
	_, ok := scanRGBA(s)
	return ok
}

// IsValidHSL reports whether s carries h in [0,360] and s, l in [0,100].
func IsValidHSL(s string) bool {
	_, ok := scanDomain(s, hslDomain)
	return ok
}

// IsValidLab reports whether s carries l in [-100,100] and a, b in [-125,125].
func IsValidLab(s string) bool {
	_, ok := scanDomain(s, labDomain)
	return ok
}

// IsValidLCh reports whether s carries three non-zero components.
// Real LCh domain rules are not defined yet.
func IsValidLCh(s string) bool {
	_, ok := scanNonZero(s)
	return ok
}

// IsValidXYZ reports whether s carries three non-zero components.
// Real XYZ domain rules are not defined yet.
func IsValidXYZ(s string) bool {
	_, ok := scanNonZero(s)
	return ok
}

// scanHex returns the RGB channels of a hex string, expanding #abc to #aabbcc.
func scanHex(s string) ([3]float64, bool) {
	digits := strings.TrimPrefix(s, "#")
	if !hexDigits.MatchString(digits) {
		return [3]float64{}, false
	}
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(digits, "%02x%02x%02x", &r, &g, &b); err != nil {
		return [3]float64{}, false
	}
	return [3]float64{float64(r), float64(g), float64(b)}, true
}

// scanDomain tokenizes s and checks exactly three components against domain.
func scanDomain(s string, domain [3]Range) ([3]float64, bool) {
	toks := Tokenize(s)
	if len(toks) != 3 {
		return [3]float64{}, false
	}
	var out [3]float64
	for i, n := range toks {
		v := float64(n)
		if !domain[i].Contains(v) {
			return [3]float64{}, false
		}
		out[i] = v
	}
	return out, true
}

func scanNonZero(s string) ([3]float64, bool) {
	toks := Tokenize(s)
	if len(toks) != 3 {
		return [3]float64{}, false
	}
	var out [3]float64
	for i, n := range toks {
		if n == 0 {
			return [3]float64{}, false
		}
		out[i] = float64(n)
	}
	return out, true
}

// scanRGBA splits rgba(r, g, b, a) on commas. The alpha is returned as a 0–1 fraction.
func scanRGBA(s string) ([4]float64, bool) {
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return [4]float64{}, false
	}
	parts := strings.Split(s[len("rgba("):len(s)-1], ",")
	if len(parts) != 4 {
		return [4]float64{}, false
	}

	var out [4]float64
	for i := range 3 {
		tok := strings.TrimSpace(parts[i])
		if !channelToken.MatchString(tok) {
			return [4]float64{}, false
		}
		n, ok := truncateToken(tok)
		if !ok || !rgbDomain[i].Contains(float64(n)) {
			return [4]float64{}, false
		}
		out[i] = float64(n)
	}

	alpha, ok := scanAlpha(strings.TrimSpace(parts[3]))
	if !ok {
		return [4]float64{}, false
	}
	out[3] = alpha
	return out, true
}

func scanAlpha(tok string) (float64, bool) {
	if !alphaToken.MatchString(tok) {
		return 0, false
	}
	pct, isPct := strings.CutSuffix(tok, "%")
	a, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return 0, false
	}
	if isPct {
		if a > 100 {
			return 0, false
		}
		return a / 100, true
	}
	if a > 1 {
		return 0, false
	}
	return a, true
}
