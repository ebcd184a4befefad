package baker

import (
	"github.com/binzume/fbxbake/fbx"
)

// MeshSnapshot is a decoded copy of one mesh, used for preview export.
type MeshSnapshot struct {
	Name     string
	Vertices []float64
	Polygons [][]int
}

// Snapshots decodes every connected mesh in the buffer. Meshes whose
// arrays cannot be parsed are omitted.
func Snapshots(buf *fbx.Buffer) []*MeshSnapshot {
	objOpen, objClose, ok := fbx.FindSection(buf.Lines, "Objects")
	if !ok {
		return nil
	}
	models, geometries := fbx.ScanObjects(buf.Lines, objOpen, objClose)
	nameByID := map[int64]string{}
	for _, m := range models {
		nameByID[m.ID] = m.Name
	}
	geomName := map[int64]string{}
	if connOpen, connClose, ok := fbx.FindSection(buf.Lines, "Connections"); ok {
		for _, c := range fbx.ScanConnections(buf.Lines, connOpen, connClose) {
			if name, ok := nameByID[c.Parent]; ok {
				geomName[c.Child] = name
			}
		}
	}

	var snaps []*MeshSnapshot
	for _, g := range geometries {
		verts, err := fbx.ReadFloatArray(buf.Lines, g.Start, g.End, "Vertices")
		if err != nil {
			continue
		}
		pvi, err := fbx.ReadIntArray(buf.Lines, g.Start, g.End, "PolygonVertexIndex")
		if err != nil {
			continue
		}
		snap := &MeshSnapshot{Name: geomName[g.ID], Vertices: verts.Values}
		var poly []int
		for _, v := range pvi.Values {
			if v < 0 {
				poly = append(poly, -v-1)
				snap.Polygons = append(snap.Polygons, poly)
				poly = nil
			} else {
				poly = append(poly, v)
			}
		}
		snaps = append(snaps, snap)
	}
	return snaps
}
