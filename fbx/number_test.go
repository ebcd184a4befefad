package fbx

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "0.5"},
		{-12.25, "-12.25"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{999999999999999, "999999999999999"},
		{0.30000000000000004, "0.3"},
		{1e-5, "1e-05"},
		{-2.5e-7, "-2.5e-07"},
		{1e20, "1e+20"},
		{90, "90"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.in); got != c.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	for _, s := range []string{" 1.5", "-2e3", "0.001 ", "7"} {
		if _, err := ParseFloat(s); err != nil {
			t.Errorf("ParseFloat(%q): %v", s, err)
		}
	}
	if v, _ := ParseFloat("-2e3"); v != -2000 {
		t.Error("parse: ", v)
	}
}
