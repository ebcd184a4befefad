package baker

import (
	"math"
	"strings"

	"github.com/binzume/fbxbake/fbx"
	"github.com/binzume/fbxbake/geom"
)

const (
	degenerateEps = 1e-14
	normalSnapEps = 1e-6
	normalLenEps  = 1e-3
)

type layerKind struct {
	header      string
	array       string
	index       string
	stride      int
	directional bool
}

var layerKinds = []layerKind{
	{"LayerElementNormal", "Normals", "NormalsIndex", 3, true},
	{"LayerElementTangent", "Tangents", "TangentsIndex", 3, true},
	{"LayerElementBinormal", "Binormals", "BinormalsIndex", 3, true},
	{"LayerElementUV", "UV", "UVIndex", 2, false},
	{"LayerElementColor", "Colors", "ColorIndex", 4, false},
}

// bakeMesh folds the bake matrix into one geometry block. Unparseable
// arrays are skipped individually; everything else proceeds. Returns the
// number of normals adjusted by the hygiene pass.
func bakeMesh(lines []string, g *fbx.Geometry, bake *geom.Matrix4, opts *Options) int {
	if verts, err := fbx.ReadFloatArray(lines, g.Start, g.End, "Vertices"); err == nil {
		applyPoints(bake, verts.Values)
		verts.Write(lines)
	}

	if normalMat, err := bake.NormalMatrix(); err == nil {
		for _, kind := range layerKinds {
			if !kind.directional {
				continue
			}
			for _, b := range fbx.FindChildBlocks(lines, g.Start, g.End, kind.header) {
				arr, err := fbx.ReadFloatArray(lines, b[0], b[1], kind.array)
				if err != nil {
					continue
				}
				applyDirections(normalMat, arr.Values)
				arr.Write(lines)
			}
		}
	}

	if bake.Det3() < 0 && !opts.KeepWinding {
		mirrorMesh(lines, g)
	}

	fixes := 0
	for _, b := range fbx.FindChildBlocks(lines, g.Start, g.End, "LayerElementNormal") {
		arr, err := fbx.ReadFloatArray(lines, b[0], b[1], "Normals")
		if err != nil {
			continue
		}
		if n := fixNormals(arr.Values); n > 0 {
			arr.Write(lines)
			fixes += n
		}
	}
	return fixes
}

func applyPoints(m *geom.Matrix4, vals []float64) {
	for i := 0; i+2 < len(vals); i += 3 {
		v := m.ApplyTo(geom.NewVector3(vals[i], vals[i+1], vals[i+2]))
		vals[i], vals[i+1], vals[i+2] = v.X, v.Y, v.Z
	}
}

func applyDirections(m *geom.Matrix4, vals []float64) {
	for i := 0; i+2 < len(vals); i += 3 {
		v := m.ApplyToDir(geom.NewVector3(vals[i], vals[i+1], vals[i+2]))
		if l := v.Len(); l > degenerateEps {
			v = v.Scale(1 / l)
		}
		vals[i], vals[i+1], vals[i+2] = v.X, v.Y, v.Z
	}
}

// mirrorMesh reverses the winding of every polygon and reorders the
// per-polygon-vertex layer data to match. The first corner of each
// polygon stays in place; the cycle direction flips, so the final entry
// of each polygon keeps the -(v+1) encoding.
func mirrorMesh(lines []string, g *fbx.Geometry) {
	pvi, err := fbx.ReadIntArray(lines, g.Start, g.End, "PolygonVertexIndex")
	if err != nil {
		return
	}
	polys := polygonRanges(pvi.Values)

	for _, kind := range layerKinds {
		for _, b := range fbx.FindChildBlocks(lines, g.Start, g.End, kind.header) {
			if !layerValueContains(lines, b[0], b[1], "MappingInformationType", "ByPolygonVertex") {
				continue
			}
			if layerValueContains(lines, b[0], b[1], "ReferenceInformationType", "IndexToDirect") {
				idx, err := fbx.ReadIntArray(lines, b[0], b[1], kind.index)
				if err != nil {
					continue
				}
				for _, p := range polys {
					reverseCycle(p[0], p[1]-p[0]+1, 1, func(i, j int) {
						idx.Values[i], idx.Values[j] = idx.Values[j], idx.Values[i]
					})
				}
				idx.Write(lines)
			} else {
				arr, err := fbx.ReadFloatArray(lines, b[0], b[1], kind.array)
				if err != nil {
					continue
				}
				for _, p := range polys {
					reverseCycle(p[0], p[1]-p[0]+1, kind.stride, func(i, j int) {
						arr.Values[i], arr.Values[j] = arr.Values[j], arr.Values[i]
					})
				}
				arr.Write(lines)
			}
		}
	}

	for _, p := range polys {
		reverseWinding(pvi.Values[p[0] : p[1]+1])
	}
	pvi.Write(lines)
}

// polygonRanges groups the polygon-vertex-index array into [start, end]
// offset pairs, end being the negatively encoded final vertex.
func polygonRanges(idx []int) [][2]int {
	var polys [][2]int
	start := 0
	for i, v := range idx {
		if v < 0 {
			polys = append(polys, [2]int{start, i})
			start = i + 1
		}
	}
	return polys
}

// reverseWinding flips one polygon's cycle direction in place, keeping
// the first vertex as the starting corner and the -(v+1) encoding on the
// final entry.
func reverseWinding(p []int) {
	last := len(p) - 1
	p[last] = -p[last] - 1
	for a, b := 1, last; a < b; a, b = a+1, b-1 {
		p[a], p[b] = p[b], p[a]
	}
	p[last] = -p[last] - 1
}

// reverseCycle applies the winding permutation to strided data at
// positions start..start+n-1, swapping element blocks a and n-a.
func reverseCycle(start, n, stride int, swap func(i, j int)) {
	for a, b := 1, n-1; a < b; a, b = a+1, b-1 {
		for s := 0; s < stride; s++ {
			swap((start+a)*stride+s, (start+b)*stride+s)
		}
	}
}

// fixNormals snaps near-zero components, replaces degenerate normals
// with +Y and renormalizes off-unit ones. Returns the number of triples
// changed.
func fixNormals(vals []float64) int {
	fixes := 0
	for i := 0; i+2 < len(vals); i += 3 {
		n := [3]float64{vals[i], vals[i+1], vals[i+2]}
		changed := false
		for k := range n {
			if n[k] != 0 && math.Abs(n[k]) < normalSnapEps {
				n[k] = 0
				changed = true
			}
		}
		l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if l < normalSnapEps {
			n = [3]float64{0, 1, 0}
			changed = true
		} else if math.Abs(l-1) > normalLenEps {
			n[0] /= l
			n[1] /= l
			n[2] /= l
			changed = true
		}
		if changed {
			vals[i], vals[i+1], vals[i+2] = n[0], n[1], n[2]
			fixes++
		}
	}
	return fixes
}

func layerValueContains(lines []string, start, end int, node, value string) bool {
	prefix := node + ":"
	for i := start + 1; i < end; i++ {
		t := strings.TrimSpace(lines[i])
		if strings.HasPrefix(t, prefix) {
			return strings.Contains(t, value)
		}
	}
	return false
}
