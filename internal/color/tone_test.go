package color

import (
	"errors"
	"testing"
)

func TestToneOf(t *testing.T) {
	tests := []struct {
		name string
		c    HSLColor
		want Tone
	}{
		{"earth", HSLColor{H: 30, S: 41, L: 77}, Earth},
		{"fluorescent", HSLColor{H: 300, S: 63, L: 82}, Fluorescent},
		{"jewel", HSLColor{H: 200, S: 83, L: 76}, Jewel},
		{"neutral", HSLColor{H: 40, S: 1, L: 70}, Neutral},
		{"pastel", HSLColor{H: 180, S: 21, L: 96}, Pastel},
		{"shades", HSLColor{H: 0, S: 0, L: 100}, Shades},
		{"between ranges", HSLColor{H: 0, S: 50, L: 50}, Custom},
		{"just outside earth", HSLColor{H: 30, S: 41.5, L: 77}, Custom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneOf(tt.c); got != tt.want {
				t.Errorf("ToneOf(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		name   string
		colors []HSLColor
		want   Tone
	}{
		{"empty", nil, Custom},
		{"single pastel", []HSLColor{{180, 18, 92}}, Pastel},
		{"all earth", []HSLColor{{20, 36, 36}, {40, 38, 50}, {60, 41, 77}}, Earth},
		{"all shades", []HSLColor{{0, 0, 0}, {0, 0, 50}, {0, 0, 100}}, Shades},
		{"mixed", []HSLColor{{285, 79, 24}, {32, 22, 53}, {37, 71, 89}, {300, 14, 4}, {0, 0, 98}}, Custom},
		{"one outlier", []HSLColor{{20, 36, 36}, {40, 38, 50}, {0, 0, 50}}, Custom},
		{"unmatched first", []HSLColor{{0, 50, 50}, {20, 36, 36}}, Custom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTone(tt.colors); got != tt.want {
				t.Errorf("ClassifyTone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyValues(t *testing.T) {
	var values []Value
	for _, s := range []string{"#000000", "#808080", "rgb(255, 255, 255)", "hsl(200, 0, 30)"} {
		v, err := ParseString(s)
		if err != nil {
			t.Fatal(err)
		}
		values = append(values, v)
	}
	if got := ClassifyValues(values); got != Shades {
		t.Errorf("ClassifyValues() = %v, want shades", got)
	}

	red, _ := ParseString("#ff0000")
	if got := ClassifyValues(append(values, red)); got != Custom {
		t.Errorf("ClassifyValues() with red = %v, want custom", got)
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		input   string
		want    Tone
		wantErr bool
	}{
		{"earth", Earth, false},
		{"Fluorescent", Fluorescent, false},
		{"JEWEL", Jewel, false},
		{"neutral", Neutral, false},
		{"pastel", Pastel, false},
		{"shades", Shades, false},
		{"shade", Shades, false},
		{"custom", Custom, false},
		{"neon", Custom, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTone(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownTone) {
				t.Errorf("error = %v, want ErrUnknownTone", err)
			}
			if got != tt.want {
				t.Errorf("ParseTone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToneRange(t *testing.T) {
	for _, tone := range NamedTones {
		if _, ok := tone.Range(); !ok {
			t.Errorf("%v has no range", tone)
		}
	}
	if _, ok := Custom.Range(); ok {
		t.Error("custom should have no range")
	}
	if got := Tone(99).String(); got != "Tone(99)" {
		t.Errorf("Tone(99).String() = %q", got)
	}
}
