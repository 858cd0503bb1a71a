package palette

import (
	"fmt"

	"github.com/jsvensson/ankh/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// colorParam accepts a color string or a palette group that has its own color.
var colorParam = function.Parameter{
	Name: "color",
	Type: cty.DynamicPseudoType,
}

// argValue resolves and parses the color argument of a palette function.
// Arguments may be results of other functions, so they are read in canonical
// form; literals were already validated when the attribute was evaluated.
func argValue(arg cty.Value) (color.Value, error) {
	s, err := ResolveColor(arg)
	if err != nil {
		return color.Value{}, err
	}
	return color.ParseCanonical(s)
}

// MakeConvertFunc creates an HCL function that re-expresses a color in another unit.
// Usage: convert("lch(70, 30, 240)", "hex") or convert(palette.rust, "lab")
func MakeConvertFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts a color to the given unit (hex, rgb, rgba, hsl, lab, lch, xyz)",
		Params: []function.Parameter{
			colorParam,
			{
				Name: "unit",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v, err := argValue(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			unit, err := color.ParseUnit(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(v.Convert(unit).String()), nil
		},
	})
}

// makeLightnessFunc builds brighten and darken, which differ only in the
// adjustment applied.
func makeLightnessFunc(desc string, adjust func(color.Value, float64) color.Value) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			colorParam,
			{
				Name: "percentage",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v, err := argValue(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[1].AsBigFloat().Float64()
			if pct < 0 || pct > 1 {
				return cty.NilVal, fmt.Errorf("percentage must be between 0 and 1, got %g", pct)
			}
			return cty.StringVal(adjust(v, pct).String()), nil
		},
	})
}

// MakeBrightenFunc creates an HCL function that brightens a color.
// Usage: brighten("#hex", 0.1) or brighten(palette.color, 0.1)
func MakeBrightenFunc() function.Function {
	return makeLightnessFunc("Brightens a color by the given percentage (0.0 to 1.0)", color.Brighten)
}

// MakeDarkenFunc creates an HCL function that darkens a color.
// Usage: darken("#hex", 0.1) or darken(palette.color, 0.1)
func MakeDarkenFunc() function.Function {
	return makeLightnessFunc("Darkens a color by the given percentage (0.0 to 1.0)", color.Darken)
}

// Functions returns the functions available inside palette files.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"convert":  MakeConvertFunc(),
		"brighten": MakeBrightenFunc(),
		"darken":   MakeDarkenFunc(),
	}
}
