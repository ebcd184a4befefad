package fbx

import (
	"strings"
)

// Model is one Model node inside the Objects section. PropStart/PropEnd
// bound its property block; PropStart < 0 means the node has no property
// block and nothing to bake.
type Model struct {
	ID   int64
	Name string
	Line int
	End  int

	PropStart int
	PropEnd   int
}

// Geometry is one mesh-bearing Geometry node. Start/End are the opening
// and closing brace lines of its content block.
type Geometry struct {
	ID    int64
	Line  int
	Start int
	End   int
}

// Connection is an object-object link row from the Connections section.
type Connection struct {
	Child  int64
	Parent int64
}

// FindSection locates a top-level section like "Objects" or
// "Connections" and returns the line indices of its opening and closing
// braces. The opening brace may sit on the header line or on a later
// line, with only blank and ";" comment lines in between.
func FindSection(lines []string, name string) (int, int, bool) {
	prefix := name + ":"
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), prefix) {
			continue
		}
		if open, close, ok := findBlock(lines, i, len(lines)-1); ok {
			return open, close, true
		}
	}
	return 0, 0, false
}

// findBlock matches the brace block opened by the header at line h.
// Braces inside double-quoted runs are ignored. A non-empty, non-comment
// line that appears before the opening brace cancels the match.
func findBlock(lines []string, h, end int) (int, int, bool) {
	depth := 0
	open := -1
	for i := h; i <= end && i < len(lines); i++ {
		line := lines[i]
		if open < 0 && i > h {
			t := strings.TrimSpace(line)
			if t == "" || strings.HasPrefix(t, ";") {
				continue
			}
			if t[0] != '{' {
				return 0, 0, false
			}
		}
		inQuote := false
		for j := 0; j < len(line); j++ {
			switch c := line[j]; {
			case c == '"':
				inQuote = !inQuote
			case inQuote:
			case c == '{':
				if open < 0 {
					open = i
				}
				depth++
			case c == '}':
				depth--
				if depth == 0 && open >= 0 {
					return open, i, true
				}
				if depth < 0 {
					return 0, 0, false
				}
			}
		}
	}
	return 0, 0, false
}

// ScanObjects builds the model and geometry tables from the Objects
// section body. Entries with unparseable identifiers or unmatched braces
// are skipped.
func ScanObjects(lines []string, open, close int) ([]*Model, []*Geometry) {
	var models []*Model
	var geometries []*Geometry
	for i := open + 1; i < close; i++ {
		t := strings.TrimSpace(lines[i])
		if strings.HasPrefix(t, "Model:") {
			blockOpen, blockClose, ok := findBlock(lines, i, close)
			if !ok {
				continue
			}
			if id, ok := parseNodeID(lines[i]); ok {
				m := &Model{ID: id, Name: extractName(lines[i]), Line: i, End: blockClose, PropStart: -1, PropEnd: -1}
				if ps, pe, ok := findPropertyBlock(lines, blockOpen, blockClose); ok {
					m.PropStart, m.PropEnd = ps, pe
				}
				models = append(models, m)
			}
			i = blockClose
		} else if strings.HasPrefix(t, "Geometry:") && strings.Contains(lines[i], `"Mesh"`) {
			blockOpen, blockClose, ok := findBlock(lines, i, close)
			if !ok {
				continue
			}
			if id, ok := parseNodeID(lines[i]); ok {
				geometries = append(geometries, &Geometry{ID: id, Line: i, Start: blockOpen, End: blockClose})
			}
			i = blockClose
		}
	}
	return models, geometries
}

func findPropertyBlock(lines []string, open, close int) (int, int, bool) {
	for i := open + 1; i < close; i++ {
		t := strings.TrimSpace(lines[i])
		if strings.HasPrefix(t, "Properties70:") || strings.HasPrefix(t, "Properties60:") {
			if po, pc, ok := findBlock(lines, i, close); ok {
				return po, pc, true
			}
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// FindChildBlocks returns the block bounds of every child node between
// open and close whose header starts with the given prefix, as
// [open, close] line index pairs.
func FindChildBlocks(lines []string, open, close int, prefix string) [][2]int {
	var blocks [][2]int
	for i := open + 1; i < close; i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), prefix) {
			continue
		}
		o, c, ok := findBlock(lines, i, close)
		if !ok {
			continue
		}
		blocks = append(blocks, [2]int{o, c})
		i = c
	}
	return blocks
}

// FindProperty returns the line index of the named property inside a
// property block, or -1.
func FindProperty(lines []string, start, end int, name string) int {
	if start < 0 {
		return -1
	}
	quoted := `"` + name + `"`
	for i := start; i <= end && i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if (strings.HasPrefix(t, "P:") || strings.HasPrefix(t, "Property:")) && strings.Contains(t, quoted) {
			return i
		}
	}
	return -1
}

// ScanConnections collects OO rows with two integer identifiers. Rows of
// any other shape are ignored.
func ScanConnections(lines []string, open, close int) []Connection {
	var conns []Connection
	for i := open + 1; i < close; i++ {
		t := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(t, "C:") && !strings.HasPrefix(t, "Connect:") {
			continue
		}
		fields := strings.Split(t[strings.IndexByte(t, ':')+1:], ",")
		if len(fields) < 3 {
			continue
		}
		if strings.Trim(strings.TrimSpace(fields[0]), `"`) != "OO" {
			continue
		}
		child, ok1 := parseID(fields[1])
		parent, ok2 := parseID(fields[2])
		if ok1 && ok2 {
			conns = append(conns, Connection{Child: child, Parent: parent})
		}
	}
	return conns
}

// parseNodeID reads the first integer literal after the first colon of a
// node header. An "L" suffix (FBX 6 long ids) is accepted.
func parseNodeID(line string) (int64, bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return 0, false
	}
	return parseID(line[colon+1:])
}

func parseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	i := 0
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	} else {
		for i < len(s) && (s[i] < '0' || s[i] > '9') {
			i++
		}
	}
	var v int64
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int64(s[i]-'0')
		i++
		n++
	}
	if n == 0 {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// extractName reads the display name from a node header. FBX names are
// quoted "Class::Name" pairs; the part after "::" is the name. Headers
// without quotes yield "?".
func extractName(line string) string {
	i := strings.IndexByte(line, '"')
	if i < 0 {
		return "?"
	}
	j := strings.IndexByte(line[i+1:], '"')
	if j < 0 {
		return "?"
	}
	name := line[i+1 : i+1+j]
	if k := strings.Index(name, "::"); k >= 0 {
		name = name[k+2:]
	}
	return name
}
