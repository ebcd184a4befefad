package fbx

import (
	"fmt"
	"strings"
)

// arrayLine records how one body line of an array literal was laid out so
// a rewrite reproduces the same shape: same prefix, same number of values
// per line, same trailing-comma continuation.
type arrayLine struct {
	index  int
	prefix string
	count  int
	comma  bool
}

// FloatArray is a flat numeric array read from a "<name>: *N { a: ... }"
// block. Values spans all body lines.
type FloatArray struct {
	Name   string
	Values []float64
	lines  []arrayLine
}

// IntArray is the integer variant (PolygonVertexIndex, layer indices).
type IntArray struct {
	Name   string
	Values []int
	lines  []arrayLine
}

// FindArray locates the named array block between start and end and
// returns the range of its body lines (the "a:" line through the line
// before the closing brace).
func FindArray(lines []string, start, end int, name string) (int, int, bool) {
	prefix := name + ":"
	for i := start; i <= end && i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(t, prefix) || !strings.Contains(t, "*") {
			continue
		}
		_, blockClose, ok := findBlock(lines, i, end)
		if !ok {
			return 0, 0, false
		}
		for j := i; j < blockClose; j++ {
			if strings.HasPrefix(strings.TrimSpace(lines[j]), "a:") {
				return j, blockClose - 1, true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}

func ReadFloatArray(lines []string, start, end int, name string) (*FloatArray, error) {
	a := &FloatArray{Name: name}
	err := readArrayLines(lines, start, end, name, func(s string) error {
		v, err := ParseFloat(s)
		if err != nil {
			return err
		}
		a.Values = append(a.Values, v)
		return nil
	}, &a.lines)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func ReadIntArray(lines []string, start, end int, name string) (*IntArray, error) {
	a := &IntArray{Name: name}
	err := readArrayLines(lines, start, end, name, func(s string) error {
		v, err := ParseInt(s)
		if err != nil {
			return err
		}
		a.Values = append(a.Values, v)
		return nil
	}, &a.lines)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func readArrayLines(lines []string, start, end int, name string, parse func(string) error, info *[]arrayLine) error {
	bodyStart, bodyEnd, ok := FindArray(lines, start, end, name)
	if !ok {
		return fmt.Errorf("array %q not found", name)
	}
	for i := bodyStart; i <= bodyEnd; i++ {
		line := lines[i]
		var prefix, rest string
		if i == bodyStart {
			p := strings.Index(line, "a:")
			prefix = line[:p+2]
			rest = line[p+2:]
		} else {
			trimmed := strings.TrimLeft(line, " \t")
			prefix = line[:len(line)-len(trimmed)]
			rest = trimmed
		}
		rest = strings.TrimRight(rest, " \t")
		li := arrayLine{index: i, prefix: prefix, comma: strings.HasSuffix(rest, ",")}
		for _, field := range strings.Split(rest, ",") {
			if strings.TrimSpace(field) == "" {
				continue
			}
			if err := parse(field); err != nil {
				return fmt.Errorf("array %q line %d: %w", name, i, err)
			}
			li.count++
		}
		*info = append(*info, li)
	}
	return nil
}

// Write re-emits the array into the buffer with the exact line layout it
// was read with. The value count must be unchanged.
func (a *FloatArray) Write(lines []string) error {
	return writeArrayLines(lines, a.lines, len(a.Values), a.Name, func(i int) string {
		return FormatFloat(a.Values[i])
	})
}

func (a *IntArray) Write(lines []string) error {
	return writeArrayLines(lines, a.lines, len(a.Values), a.Name, func(i int) string {
		return FormatInt(a.Values[i])
	})
}

func writeArrayLines(lines []string, info []arrayLine, total int, name string, format func(int) string) error {
	count := 0
	for _, li := range info {
		count += li.count
	}
	if count != total {
		return fmt.Errorf("array %q: value count changed: %d != %d", name, total, count)
	}
	n := 0
	for k, li := range info {
		var sb strings.Builder
		sb.WriteString(li.prefix)
		if k == 0 {
			sb.WriteString(" ")
		}
		for c := 0; c < li.count; c++ {
			if c > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(format(n))
			n++
		}
		if li.comma {
			sb.WriteString(",")
		}
		lines[li.index] = sb.String()
	}
	return nil
}
