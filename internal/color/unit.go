package color

import (
	"errors"
	"fmt"
	"strings"
)

// Unit identifies the coordinate system a Value is expressed in.
type Unit int

const (
	Hex Unit = iota
	RGB
	RGBA
	HSL
	Lab
	LCh
	XYZ
)

// Units lists every supported unit in declaration order.
var Units = []Unit{Hex, RGB, RGBA, HSL, Lab, LCh, XYZ}

var unitNames = [...]string{
	Hex:  "hex",
	RGB:  "rgb",
	RGBA: "rgba",
	HSL:  "hsl",
	Lab:  "lab",
	LCh:  "lch",
	XYZ:  "xyz",
}

// Sentinel errors returned (wrapped) by the parser and converter.
var (
	ErrInvalidFormat     = errors.New("invalid format")
	ErrInvalidHexFormat  = errors.New("invalid HEX format")
	ErrInvalidHSLFormat  = errors.New("invalid HSL format")
	ErrInvalidLabFormat  = errors.New("invalid LAB format")
	ErrInvalidLChFormat  = errors.New("invalid LCH format")
	ErrInvalidRGBFormat  = errors.New("invalid RGB format")
	ErrInvalidRGBAFormat = errors.New("invalid RGBA format")
	ErrInvalidXYZFormat  = errors.New("invalid XYZ format")
	ErrUnknownUnit       = errors.New("unknown color unit")
)

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit resolves a unit name such as "hsl" or "HEX". "hexa" is accepted as Hex.
func ParseUnit(name string) (Unit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "hexa" {
		return Hex, nil
	}
	for u, s := range unitNames {
		if s == n {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// formatErr returns the sentinel error a malformed value of unit u is reported with.
func (u Unit) formatErr() error {
	switch u {
	case Hex:
		return ErrInvalidHexFormat
	case RGB:
		return ErrInvalidRGBFormat
	case RGBA:
		return ErrInvalidRGBAFormat
	case HSL:
		return ErrInvalidHSLFormat
	case Lab:
		return ErrInvalidLabFormat
	case LCh:
		return ErrInvalidLChFormat
	case XYZ:
		return ErrInvalidXYZFormat
	}
	return ErrInvalidFormat
}

// prefix is the leading text that identifies a string in unit u.
func (u Unit) prefix() string {
	if u == Hex {
		return "#"
	}
	return u.String() + "("
}
