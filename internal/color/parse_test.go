package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantUnit  Unit
		wantComps []float64
		wantStr   string
	}{
		{"hex", "#eb6f92", Hex, []float64{235, 111, 146}, "#eb6f92"},
		{"hex uppercase", "#AABBCC", Hex, []float64{170, 187, 204}, "#aabbcc"},
		{"hex shorthand", "#abc", Hex, []float64{170, 187, 204}, "#aabbcc"},
		{"rgb", "rgb(255, 31, 22)", RGB, []float64{255, 31, 22}, "rgb(255, 31, 22)"},
		{"rgb tight", "rgb(0,0,0)", RGB, []float64{0, 0, 0}, "rgb(0, 0, 0)"},
		{"rgba fraction", "rgba(0,0,0,.5)", RGBA, []float64{0, 0, 0, 0.5}, "rgba(0, 0, 0, 50%)"},
		{"rgba percent", "rgba(10, 20, 30, 25%)", RGBA, []float64{10, 20, 30, 0.25}, "rgba(10, 20, 30, 25%)"},
		{"rgba noisy fraction", "rgba(255, 31, 22, .3)", RGBA, []float64{255, 31, 22, 0.3}, "rgba(255, 31, 22, 30%)"},
		{"hsl", "hsl(120, 20%, 20%)", HSL, []float64{120, 20, 20}, "hsl(120, 20, 20)"},
		{"hsl truncates", "hsl(180.9, 50.5, 50)", HSL, []float64{180, 50, 50}, "hsl(180, 50, 50)"},
		{"lab", "lab(20, -20, 20)", Lab, []float64{20, -20, 20}, "lab(20, -20, 20)"},
		{"lch", "lch(50, 30, 120)", LCh, []float64{50, 30, 120}, "lch(50, 30, 120)"},
		{"xyz", "xyz(12, 20, 48)", XYZ, []float64{12, 20, 48}, "xyz(12, 20, 48)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) error: %v", tt.input, err)
			}
			if got.Unit() != tt.wantUnit {
				t.Errorf("Unit() = %v, want %v", got.Unit(), tt.wantUnit)
			}
			if diff := cmp.Diff(tt.wantComps, got.Components()); diff != "" {
				t.Errorf("Components() mismatch (-want +got):\n%s", diff)
			}
			if got.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantStr)
			}
			if got.Raw() != tt.input {
				t.Errorf("Raw() = %q, want %q", got.Raw(), tt.input)
			}
		})
	}
}

func TestParseString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"no prefix", "eb6f92", ErrInvalidFormat},
		{"named color", "red", ErrInvalidFormat},
		{"uppercase function", "RGB(1, 2, 3)", ErrInvalidFormat},
		{"empty", "", ErrInvalidFormat},
		{"bad hex", "#ggg", ErrInvalidHexFormat},
		{"rgb out of range", "rgb(300, 0, 0)", ErrInvalidRGBFormat},
		{"rgba missing alpha", "rgba(0, 0, 0)", ErrInvalidRGBAFormat},
		{"hsl out of range", "hsl(400, 0, 0)", ErrInvalidHSLFormat},
		{"lab out of range", "lab(0, 200, 0)", ErrInvalidLabFormat},
		{"lch zero", "lch(0, 0, 0)", ErrInvalidLChFormat},
		{"xyz zero", "xyz(0, 0, 0)", ErrInvalidXYZFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseString(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParse_IgnoresPrefix(t *testing.T) {
	// Validators look only at the component tokens, so a body in one unit's
	// syntax is accepted by another unit when the domain fits.
	v, err := Parse(Lab, "rgb(20, 20, 20)")
	if err != nil {
		t.Fatalf("Parse(Lab) error: %v", err)
	}
	if v.Unit() != Lab {
		t.Errorf("Unit() = %v, want lab", v.Unit())
	}
	if got, want := v.String(), "lab(20, 20, 20)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParse_UnknownUnit(t *testing.T) {
	_, err := Parse(Unit(42), "rgb(0, 0, 0)")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Parse(Unit(42)) error = %v, want ErrUnknownUnit", err)
	}
}

func TestDetectUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
	}{
		{"#fff", Hex},
		{"rgb(0, 0, 0)", RGB},
		{"rgba(0, 0, 0, 1)", RGBA},
		{"hsl(0, 0, 0)", HSL},
		{"lab(0, 0, 0)", Lab},
		{"lch(0, 0, 0)", LCh},
		{"xyz(0, 0, 0)", XYZ},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DetectUnit(tt.input)
			if err != nil {
				t.Fatalf("DetectUnit(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DetectUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"hex", Hex, false},
		{"HEXA", Hex, false},
		{"rgba", RGBA, false},
		{" LCh ", LCh, false},
		{"xyz", XYZ, false},
		{"oklch", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnknownUnit) {
					t.Errorf("error = %v, want ErrUnknownUnit", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{1, "1"},
		{-520.2041616, "-520.2041616"},
		{193.80000000000004, "193.80000000000004"},
		{0.000001, "0.000001"},
		{5.89248204531318e-9, "5.89248204531318e-9"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatNumber(tt.in); got != tt.want {
				t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		input     string
		wantUnit  Unit
		wantComps []float64
	}{
		{"xyz(8.9, 4.58, 0.4166)", XYZ, []float64{8.9, 4.58, 0.4166}},
		{"xyz(5.89248204531318e-9, 1, 1)", XYZ, []float64{5.89248204531318e-9, 1, 1}},
		{"lch(53.58, 0.007, 296.8)", LCh, []float64{53.58, 0.007, 296.8}},
		{"rgb(-532.7, 151.5, -199.8)", RGB, []float64{-532.7, 151.5, -199.8}},
		{"hsl(200, 18.5, 92.25)", HSL, []float64{200, 18.5, 92.25}},
		{"rgba(1, 2, 3, 50%)", RGBA, []float64{1, 2, 3, 0.5}},
		{"rgba(1, 2, 3, 0.25)", RGBA, []float64{1, 2, 3, 0.25}},
		{"#01020305", Hex, []float64{1, 2, 3, 0.05}},
		{"#abc", Hex, []float64{170, 187, 204}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCanonical(tt.input)
			if err != nil {
				t.Fatalf("ParseCanonical(%q) error: %v", tt.input, err)
			}
			if got.Unit() != tt.wantUnit {
				t.Errorf("Unit() = %v, want %v", got.Unit(), tt.wantUnit)
			}
			if diff := cmp.Diff(tt.wantComps, got.Components()); diff != "" {
				t.Errorf("Components() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCanonical_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"dusk", ErrInvalidFormat},
		{"xyz(1, 2)", ErrInvalidXYZFormat},
		{"rgb(a, 0, 0)", ErrInvalidRGBFormat},
		{"rgba(1, 2, 3)", ErrInvalidRGBAFormat},
		{"lab(1, 2, 3", ErrInvalidLabFormat},
		{"#0102030", ErrInvalidHexFormat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, err := ParseCanonical(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseCanonical(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseCanonical_ReadsConversions(t *testing.T) {
	for _, input := range []string{"rgb(135, 206, 235)", "#800000", "#808080", "rgba(10, 20, 30, 5%)", "lab(50, -120, 120)"} {
		v, err := ParseString(input)
		if err != nil {
			t.Fatal(err)
		}
		for _, u := range Units {
			want := v.Convert(u).String()
			got, err := ParseCanonical(want)
			if err != nil {
				t.Errorf("%s as %v: ParseCanonical(%q): %v", input, u, want, err)
				continue
			}
			if got.String() != want {
				t.Errorf("%s as %v: ParseCanonical(%q) = %q", input, u, want, got.String())
			}
		}
	}
}
