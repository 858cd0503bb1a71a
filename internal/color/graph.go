package color

import "fmt"

// The conversion graph is a tree rooted at RGB:
//
//	Hex ─┐
//	RGBA ┼─ RGB ── XYZ ── Lab ── LCh
//	HSL ─┘
//
// Each non-root unit has a parent and a pair of edge functions. A conversion
// climbs from the source to the lowest common ancestor of both units and then
// descends to the target, which is the only (and so shortest) path.

type edge struct {
	parent Unit
	up     func([3]float64) [3]float64 // unit -> parent
	down   func([3]float64) [3]float64 // parent -> unit
}

var edges = map[Unit]edge{
	Hex:  {parent: RGB, up: identity, down: rgbToHex},
	RGBA: {parent: RGB, up: identity, down: identity},
	HSL:  {parent: RGB, up: hslToRGB, down: rgbToHSL},
	XYZ:  {parent: RGB, up: xyzToRGB, down: rgbToXYZ},
	Lab:  {parent: XYZ, up: labToXYZ, down: xyzToLab},
	LCh:  {parent: Lab, up: lchToLab, down: labToLCh},
}

// pathToRoot lists u and its ancestors, ending at RGB.
func pathToRoot(u Unit) []Unit {
	path := []Unit{u}
	for {
		e, ok := edges[u]
		if !ok {
			return path
		}
		u = e.parent
		path = append(path, u)
	}
}

// Route returns the units visited when converting from one unit to another,
// both ends included.
func Route(from, to Unit) []Unit {
	up := pathToRoot(from)
	down := pathToRoot(to)

	depth := make(map[Unit]int, len(down))
	for i, u := range down {
		depth[u] = i
	}

	var route []Unit
	for _, u := range up {
		route = append(route, u)
		if i, ok := depth[u]; ok {
			for j := i - 1; j >= 0; j-- {
				route = append(route, down[j])
			}
			return route
		}
	}
	return route
}

// Convert returns v expressed in unit to. Intermediate results stay in
// float64; nothing is re-parsed or rounded except when the target is Hex.
//
// Alpha survives conversions between RGBA and Hex. Converting to RGBA from a
// unit without alpha gives a fully opaque color; other targets drop it.
func (v Value) Convert(to Unit) Value {
	if v.unit == to {
		return v
	}

	route := Route(v.unit, to)
	c := v.comps
	for i := 1; i < len(route); i++ {
		prev, next := route[i-1], route[i]
		if e, ok := edges[prev]; ok && e.parent == next {
			c = e.up(c)
		} else {
			c = edges[next].down(c)
		}
	}

	out := Value{unit: to, comps: c}
	switch to {
	case RGBA:
		out.alpha, out.hasAlpha = 1, true
		if v.hasAlpha {
			out.alpha = v.alpha
		}
	case Hex:
		out.alpha, out.hasAlpha = v.alpha, v.hasAlpha
	}
	out.raw = out.String()
	return out
}

// ConvertString parses s, detecting its unit from the prefix, and returns its
// canonical string form in unit to.
func ConvertString(s string, to Unit) (string, error) {
	v, err := ParseString(s)
	if err != nil {
		return "", err
	}
	if _, ok := edges[to]; !ok && to != RGB {
		return "", fmt.Errorf("%w: %v", ErrUnknownUnit, to)
	}
	return v.Convert(to).String(), nil
}

// convertAs parses s as unit from and formats it in unit to.
func convertAs(s string, from, to Unit) (string, error) {
	v, err := Parse(from, s)
	if err != nil {
		return "", err
	}
	return v.Convert(to).String(), nil
}

// HSLToHex converts "hsl(h, s, l)" to "#rrggbb".
func HSLToHex(s string) (string, error) { return convertAs(s, HSL, Hex) }

// LabToHex converts "lab(l, a, b)" to "#rrggbb".
func LabToHex(s string) (string, error) { return convertAs(s, Lab, Hex) }

// LChToHex converts "lch(l, c, h)" to "#rrggbb".
func LChToHex(s string) (string, error) { return convertAs(s, LCh, Hex) }

// RGBToHex converts "rgb(r, g, b)" to "#rrggbb".
func RGBToHex(s string) (string, error) { return convertAs(s, RGB, Hex) }

// XYZToHex converts "xyz(x, y, z)" to "#rrggbb".
func XYZToHex(s string) (string, error) { return convertAs(s, XYZ, Hex) }

// RGBAToHexA converts "rgba(r, g, b, a)" to "#rrggbb" followed by the alpha
// percentage, which is omitted when the color is fully opaque.
func RGBAToHexA(s string) (string, error) { return convertAs(s, RGBA, Hex) }

func HexToHSL(s string) (string, error) { return convertAs(s, Hex, HSL) }
func LabToHSL(s string) (string, error) { return convertAs(s, Lab, HSL) }
func LChToHSL(s string) (string, error) { return convertAs(s, LCh, HSL) }
func RGBToHSL(s string) (string, error) { return convertAs(s, RGB, HSL) }
func XYZToHSL(s string) (string, error) { return convertAs(s, XYZ, HSL) }

func HexToLab(s string) (string, error) { return convertAs(s, Hex, Lab) }
func HSLToLab(s string) (string, error) { return convertAs(s, HSL, Lab) }
func LChToLab(s string) (string, error) { return convertAs(s, LCh, Lab) }
func RGBToLab(s string) (string, error) { return convertAs(s, RGB, Lab) }
func XYZToLab(s string) (string, error) { return convertAs(s, XYZ, Lab) }

func HexToLCh(s string) (string, error) { return convertAs(s, Hex, LCh) }
func HSLToLCh(s string) (string, error) { return convertAs(s, HSL, LCh) }
func LabToLCh(s string) (string, error) { return convertAs(s, Lab, LCh) }
func RGBToLCh(s string) (string, error) { return convertAs(s, RGB, LCh) }
func XYZToLCh(s string) (string, error) { return convertAs(s, XYZ, LCh) }

func HexToRGB(s string) (string, error) { return convertAs(s, Hex, RGB) }
func HSLToRGB(s string) (string, error) { return convertAs(s, HSL, RGB) }
func LabToRGB(s string) (string, error) { return convertAs(s, Lab, RGB) }
func LChToRGB(s string) (string, error) { return convertAs(s, LCh, RGB) }
func XYZToRGB(s string) (string, error) { return convertAs(s, XYZ, RGB) }

func HexToXYZ(s string) (string, error) { return convertAs(s, Hex, XYZ) }
func HSLToXYZ(s string) (string, error) { return convertAs(s, HSL, XYZ) }
func LabToXYZ(s string) (string, error) { return convertAs(s, Lab, XYZ) }
func LChToXYZ(s string) (string, error) { return convertAs(s, LCh, XYZ) }
func RGBToXYZ(s string) (string, error) { return convertAs(s, RGB, XYZ) }
