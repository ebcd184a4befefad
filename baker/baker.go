// Package baker folds the local transforms of FBX model nodes into their
// mesh geometry, leaving the nodes with identity rotation and unit scale.
// It mutates the text buffer in place; lines it does not recognize are
// never touched.
package baker

import (
	"errors"
	"sort"

	"github.com/binzume/fbxbake/fbx"
	"github.com/binzume/fbxbake/geom"
)

// Options tweak conventions that differ between content tools. The zero
// value matches the common FBX SDK behavior.
type Options struct {
	// KeepWinding disables winding reversal and layer reordering for
	// mirrored meshes, for assets whose exporter already accounted for
	// the mirror in the polygon data.
	KeepWinding bool
	// NoPostRotationInverse composes PostRotation directly instead of
	// its inverse (some exporters write the non-inverted convention).
	NoPostRotationInverse bool
}

type Baker struct {
	opts Options
}

func New(opts *Options) *Baker {
	if opts == nil {
		opts = &Options{}
	}
	return &Baker{opts: *opts}
}

// Result summarizes one file.
type Result struct {
	BakedMeshes  int
	FixedNormals int
}

// Bake rewrites every mesh in the buffer whose owning model carries
// non-neutral bakeable transforms. Malformed entries and singular
// residues skip the affected mesh only.
func (b *Baker) Bake(buf *fbx.Buffer) (*Result, error) {
	res := &Result{}
	objOpen, objClose, ok := fbx.FindSection(buf.Lines, "Objects")
	if !ok {
		return res, nil
	}

	models, geometries := fbx.ScanObjects(buf.Lines, objOpen, objClose)
	modelByID := map[int64]*fbx.Model{}
	for _, m := range models {
		modelByID[m.ID] = m
	}
	geomByID := map[int64]*fbx.Geometry{}
	for _, g := range geometries {
		geomByID[g.ID] = g
	}

	geomToModel := map[int64]int64{}
	if connOpen, connClose, ok := fbx.FindSection(buf.Lines, "Connections"); ok {
		for _, c := range fbx.ScanConnections(buf.Lines, connOpen, connClose) {
			if _, isGeom := geomByID[c.Child]; !isGeom {
				continue
			}
			if _, isModel := modelByID[c.Parent]; !isModel {
				continue
			}
			geomToModel[c.Child] = c.Parent
		}
	}

	// geometry id order keeps runs reproducible
	ids := make([]int64, 0, len(geomToModel))
	for id := range geomToModel {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		g := geomByID[id]
		m := modelByID[geomToModel[id]]
		if m.PropStart < 0 {
			continue
		}
		tf := ReadTransforms(buf.Lines, m)
		if tf.IsNeutral() {
			continue
		}
		bake, err := tf.BakeMatrix(&b.opts)
		if errors.Is(err, geom.ErrSingularMatrix) {
			continue
		} else if err != nil {
			return res, err
		}
		res.FixedNormals += bakeMesh(buf.Lines, g, bake, &b.opts)
		resetTransforms(buf.Lines, m)
		res.BakedMeshes++
	}
	return res, nil
}

// resetTransforms writes neutral values into the baked properties.
// Translation, offsets and pivots stay: their effect is the clean
// residue that keeps the node's world position.
func resetTransforms(lines []string, m *fbx.Model) {
	s, e := m.PropStart, m.PropEnd
	zero := geom.NewVector3(0, 0, 0)
	one := geom.NewVector3(1, 1, 1)
	fbx.WriteProperty3(lines, s, e, "Lcl Rotation", zero)
	fbx.WriteProperty3(lines, s, e, "PreRotation", zero)
	fbx.WriteProperty3(lines, s, e, "PostRotation", zero)
	fbx.WriteProperty3(lines, s, e, "Lcl Scaling", one)
	fbx.WriteProperty3(lines, s, e, "GeometricTranslation", zero)
	fbx.WriteProperty3(lines, s, e, "GeometricRotation", zero)
	fbx.WriteProperty3(lines, s, e, "GeometricScaling", one)
}
