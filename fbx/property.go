package fbx

import (
	"strings"

	"github.com/binzume/fbxbake/geom"
)

// ReadProperty3 reads the 3-vector tail of the named property line, or
// returns def when the property is absent.
func ReadProperty3(lines []string, start, end int, name string, def *geom.Vector3) *geom.Vector3 {
	i := FindProperty(lines, start, end, name)
	if i < 0 {
		return def
	}
	v, ok := readVec3Tail(lines[i])
	if !ok {
		return def
	}
	return v
}

// ReadPropertyInt reads the last field of the named property line as an
// integer (used for enum properties like RotationOrder).
func ReadPropertyInt(lines []string, start, end int, name string, def int) int {
	i := FindProperty(lines, start, end, name)
	if i < 0 {
		return def
	}
	fields := strings.Split(lines[i], ",")
	v, err := ParseFloat(fields[len(fields)-1])
	if err != nil {
		return def
	}
	return int(v)
}

// WriteProperty3 overwrites the three trailing comma-separated fields of
// the named property line. Everything before them keeps its bytes. A
// missing property is a no-op.
func WriteProperty3(lines []string, start, end int, name string, v *geom.Vector3) bool {
	i := FindProperty(lines, start, end, name)
	if i < 0 {
		return false
	}
	line, ok := writeVec3Tail(lines[i], v)
	if !ok {
		return false
	}
	lines[i] = line
	return true
}

func readVec3Tail(line string) (*geom.Vector3, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return nil, false
	}
	var arr [3]float64
	for n := 0; n < 3; n++ {
		v, err := ParseFloat(fields[len(fields)-3+n])
		if err != nil {
			return nil, false
		}
		arr[n] = v
	}
	return geom.NewVector3(arr[0], arr[1], arr[2]), true
}

func writeVec3Tail(line string, v *geom.Vector3) (string, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return "", false
	}
	head := strings.Join(fields[:len(fields)-3], ",")
	return head + "," + FormatFloat(v.X) + "," + FormatFloat(v.Y) + "," + FormatFloat(v.Z), true
}
