package unity

import (
	"fmt"
	"strings"
)

type identityValue struct {
	inline     string
	components map[byte]string
}

var transformKeys = map[string]identityValue{
	"m_LocalRotation": {
		inline:     "{x: 0, y: 0, z: 0, w: 1}",
		components: map[byte]string{'x': "0", 'y': "0", 'z': "0", 'w': "1"},
	},
	"m_LocalScale": {
		inline:     "{x: 1, y: 1, z: 1}",
		components: map[byte]string{'x': "1", 'y': "1", 'z': "1"},
	},
	"m_LocalEulerAnglesHint": {
		inline:     "{x: 0, y: 0, z: 0}",
		components: map[byte]string{'x': "0", 'y': "0", 'z': "0"},
	},
}

// ResetTransforms overwrites every m_LocalRotation, m_LocalScale and
// m_LocalEulerAnglesHint value in the document with identity. Both the
// inline flow style ({x: …, y: …, z: …}) and the block mapping style
// (components on indented lines) are handled; untouched lines keep their
// bytes. Returns the rewritten document and the number of values reset.
func ResetTransforms(data []byte) ([]byte, int) {
	lines := strings.Split(string(data), "\n")
	count := 0
	for i := 0; i < len(lines); i++ {
		line, eol := splitCR(lines[i])
		t := strings.TrimLeft(line, " ")
		key, id, ok := matchTransformKey(t)
		if !ok {
			continue
		}
		indent := line[:len(line)-len(t)]
		rest := strings.TrimSpace(t[len(key)+1:])
		if strings.HasPrefix(rest, "{") {
			lines[i] = indent + key + ": " + id.inline + eol
			count++
		} else if rest == "" {
			changed := false
			for j := i + 1; j < len(lines); j++ {
				cl, ceol := splitCR(lines[j])
				ct := strings.TrimLeft(cl, " ")
				cindent := cl[:len(cl)-len(ct)]
				if len(cindent) <= len(indent) || len(ct) < 2 || ct[1] != ':' {
					break
				}
				v, ok := id.components[ct[0]]
				if !ok {
					break
				}
				lines[j] = cindent + ct[:2] + " " + v + ceol
				changed = true
				i = j
			}
			if changed {
				count++
			}
		}
	}
	return []byte(strings.Join(lines, "\n")), count
}

func matchTransformKey(t string) (string, identityValue, bool) {
	for key, id := range transformKeys {
		if strings.HasPrefix(t, key+":") {
			return key, id, true
		}
	}
	return "", identityValue{}, false
}

func splitCR(line string) (string, string) {
	if strings.HasSuffix(line, "\r") {
		return line[:len(line)-1], "\r"
	}
	return line, ""
}

// VerifyReset decodes every Transform document and checks that its local
// rotation, scale and euler hint hold the identity values.
func VerifyReset(data []byte) error {
	for _, doc := range ParseDocuments(data) {
		if doc.Tag != TransformTag {
			continue
		}
		var m map[string]*Transform
		if err := doc.Decode(&m); err != nil {
			return fmt.Errorf("transform %s: %w", doc.refID, err)
		}
		tr := m["Transform"]
		if tr == nil {
			continue
		}
		if (tr.LocalRotation != Vector4{0, 0, 0, 1}) {
			return fmt.Errorf("transform %s: rotation not identity: %+v", doc.refID, tr.LocalRotation)
		}
		if (tr.LocalScale != Vector3{1, 1, 1}) {
			return fmt.Errorf("transform %s: scale not identity: %+v", doc.refID, tr.LocalScale)
		}
		if (tr.LocalEulerAnglesHint != Vector3{}) {
			return fmt.Errorf("transform %s: euler hint not zero: %+v", doc.refID, tr.LocalEulerAnglesHint)
		}
	}
	return nil
}
