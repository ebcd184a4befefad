// Package gltfutil exports baked meshes as GLB files so the bake result
// can be eyeballed in any glTF viewer without a DCC roundtrip.
package gltfutil

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/binzume/fbxbake/baker"
)

// BuildPreview assembles a glTF document with one node per mesh.
// Positions are taken as-is; n-gons are fan triangulated (preview
// quality only).
func BuildPreview(meshes []*baker.MeshSnapshot) *gltf.Document {
	doc := gltf.NewDocument()
	for _, m := range meshes {
		positions := make([][3]float32, len(m.Vertices)/3)
		for i := range positions {
			positions[i] = [3]float32{
				float32(m.Vertices[i*3]),
				float32(m.Vertices[i*3+1]),
				float32(m.Vertices[i*3+2]),
			}
		}
		var indices []uint32
		for _, poly := range m.Polygons {
			for t := 1; t+1 < len(poly); t++ {
				indices = append(indices, uint32(poly[0]), uint32(poly[t]), uint32(poly[t+1]))
			}
		}
		if len(positions) == 0 || len(indices) == 0 {
			continue
		}
		mesh := &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]uint32{
					"POSITION": modeler.WritePosition(doc, positions),
				},
				Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			}},
		}
		doc.Meshes = append(doc.Meshes, mesh)
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// SavePreview writes the meshes to a .glb file.
func SavePreview(meshes []*baker.MeshSnapshot, path string) error {
	return gltf.SaveBinary(BuildPreview(meshes), path)
}
