package baker

import (
	"testing"

	"github.com/binzume/fbxbake/fbx"
)

func TestReverseWinding(t *testing.T) {
	tri := []int{0, 1, -3}
	reverseWinding(tri)
	if tri[0] != 0 || tri[1] != 2 || tri[2] != -2 {
		t.Error("triangle: ", tri)
	}

	quad := []int{4, 5, 6, -8}
	reverseWinding(quad)
	want := []int{4, 7, 6, -6}
	for i := range want {
		if quad[i] != want[i] {
			t.Fatal("quad: ", quad)
		}
	}

	// reversing twice restores the original
	reverseWinding(quad)
	orig := []int{4, 5, 6, -8}
	for i := range orig {
		if quad[i] != orig[i] {
			t.Fatal("double reverse: ", quad)
		}
	}
}

func TestPolygonRanges(t *testing.T) {
	polys := polygonRanges([]int{0, 1, -3, 3, 4, 5, -7})
	if len(polys) != 2 {
		t.Fatal("polys: ", polys)
	}
	if polys[0] != [2]int{0, 2} || polys[1] != [2]int{3, 6} {
		t.Error("ranges: ", polys)
	}
}

func TestFixNormals(t *testing.T) {
	vals := []float64{
		1e-7, 1, 0, // near-zero component snaps
		0, 0, 0, // degenerate becomes +Y
		0, 3, 4, // off-unit renormalizes
		0, 0, 1, // untouched
	}
	n := fixNormals(vals)
	if n != 3 {
		t.Error("fixes: ", n)
	}
	want := []float64{0, 1, 0, 0, 1, 0, 0, 0.6, 0.8, 0, 0, 1}
	for i := range want {
		if d := vals[i] - want[i]; d > testEps || d < -testEps {
			t.Errorf("vals[%d] = %v, want %v", i, vals[i], want[i])
		}
	}
}

var uvLayerDoc = []string{
	`	Geometry: 1, "Geometry::", "Mesh" {`,
	`		PolygonVertexIndex: *3 {`,
	`			a: 0,1,-3`,
	`		}`,
	`		LayerElementUV: 0 {`,
	`			MappingInformationType: "ByPolygonVertex"`,
	`			ReferenceInformationType: "IndexToDirect"`,
	`			UV: *6 {`,
	`				a: 0,0,1,0,1,1`,
	`			}`,
	`			UVIndex: *3 {`,
	`				a: 0,1,2`,
	`			}`,
	`		}`,
	`	}`,
}

func TestMirrorIndexToDirect(t *testing.T) {
	lines := append([]string{}, uvLayerDoc...)
	g := &fbx.Geometry{Start: 0, End: len(lines) - 1}
	mirrorMesh(lines, g)

	if lines[2] != `			a: 0,2,-2` {
		t.Error("winding: ", lines[2])
	}
	// indexed layers reorder the index array, not the data
	if lines[11] != `				a: 0,2,1` {
		t.Error("uv index: ", lines[11])
	}
	if lines[8] != `				a: 0,0,1,0,1,1` {
		t.Error("uv data must stay: ", lines[8])
	}
}

func TestMirrorSkipsByControlPoint(t *testing.T) {
	lines := append([]string{}, uvLayerDoc...)
	lines[5] = `			MappingInformationType: "ByControlPoint"`
	g := &fbx.Geometry{Start: 0, End: len(lines) - 1}
	mirrorMesh(lines, g)

	if lines[2] != `			a: 0,2,-2` {
		t.Error("winding: ", lines[2])
	}
	// per-control-point data is index-addressed, reordering would corrupt it
	if lines[11] != `				a: 0,1,2` {
		t.Error("uv index: ", lines[11])
	}
}
