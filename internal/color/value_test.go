package color

import "testing"

func TestValue_Rounded(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		to       Unit
		decimals int
		want     string
	}{
		{"xyz to lab", "xyz(20, 20, 20)", Lab, 2, "lab(51.84, 4.99, 3.27)"},
		{"lab to lch", "lab(20, 20, 20)", LCh, 3, "lch(20, 28.284, 45)"},
		{"integers unchanged", "rgb(10, 20, 30)", RGB, 0, "rgb(10, 20, 30)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseString(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			got := v.Convert(tt.to).Rounded(tt.decimals)
			if got.String() != tt.want {
				t.Errorf("Rounded() = %q, want %q", got.String(), tt.want)
			}
			if got.Raw() != tt.want {
				t.Errorf("Raw() = %q, want %q", got.Raw(), tt.want)
			}
		})
	}
}
