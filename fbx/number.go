package fbx

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat prints a value the way the FBX exporters do: plain fixed
// notation with up to ten fractional digits for ordinary magnitudes,
// scientific notation with 15 significant digits otherwise, and a bare
// "0" for zero of either sign. Output is locale independent.
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	a := math.Abs(v)
	if a >= 1e-4 && a < 1e15 {
		s := strconv.FormatFloat(v, 'f', 10, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
		return s
	}
	return strconv.FormatFloat(v, 'g', 15, 64)
}

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
