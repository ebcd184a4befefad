package baker

import (
	"github.com/binzume/fbxbake/fbx"
	"github.com/binzume/fbxbake/geom"
)

// Transforms is the full transform property set of one Model node,
// defaults substituted for absent properties.
type Transforms struct {
	Translation    *geom.Vector3
	RotationOffset *geom.Vector3
	RotationPivot  *geom.Vector3
	PreRotation    *geom.Vector3
	Rotation       *geom.Vector3
	PostRotation   *geom.Vector3
	ScalingOffset  *geom.Vector3
	ScalingPivot   *geom.Vector3
	Scaling        *geom.Vector3

	GeometricTranslation *geom.Vector3
	GeometricRotation    *geom.Vector3
	GeometricScaling     *geom.Vector3

	RotationOrder geom.RotationOrder
}

func zero3() *geom.Vector3 { return geom.NewVector3(0, 0, 0) }
func one3() *geom.Vector3  { return geom.NewVector3(1, 1, 1) }

// ReadTransforms reads the transform properties of a model's property
// block. Missing properties default to zero, scalings to one.
func ReadTransforms(lines []string, m *fbx.Model) *Transforms {
	s, e := m.PropStart, m.PropEnd
	return &Transforms{
		Translation:          fbx.ReadProperty3(lines, s, e, "Lcl Translation", zero3()),
		RotationOffset:       fbx.ReadProperty3(lines, s, e, "RotationOffset", zero3()),
		RotationPivot:        fbx.ReadProperty3(lines, s, e, "RotationPivot", zero3()),
		PreRotation:          fbx.ReadProperty3(lines, s, e, "PreRotation", zero3()),
		Rotation:             fbx.ReadProperty3(lines, s, e, "Lcl Rotation", zero3()),
		PostRotation:         fbx.ReadProperty3(lines, s, e, "PostRotation", zero3()),
		ScalingOffset:        fbx.ReadProperty3(lines, s, e, "ScalingOffset", zero3()),
		ScalingPivot:         fbx.ReadProperty3(lines, s, e, "ScalingPivot", zero3()),
		Scaling:              fbx.ReadProperty3(lines, s, e, "Lcl Scaling", one3()),
		GeometricTranslation: fbx.ReadProperty3(lines, s, e, "GeometricTranslation", zero3()),
		GeometricRotation:    fbx.ReadProperty3(lines, s, e, "GeometricRotation", zero3()),
		GeometricScaling:     fbx.ReadProperty3(lines, s, e, "GeometricScaling", one3()),
		RotationOrder:        geom.RotationOrder(fbx.ReadPropertyInt(lines, s, e, "RotationOrder", 0)),
	}
}

func isZero(v *geom.Vector3) bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }
func isOne(v *geom.Vector3) bool  { return v.X == 1 && v.Y == 1 && v.Z == 1 }

// IsNeutral reports whether the bake matrix is necessarily identity.
// Translation, offsets and pivots are excluded: they only contribute to
// the clean residue when rotation and scaling are at rest.
func (t *Transforms) IsNeutral() bool {
	return isZero(t.Rotation) && isZero(t.PreRotation) && isZero(t.PostRotation) &&
		isOne(t.Scaling) &&
		isZero(t.GeometricTranslation) && isZero(t.GeometricRotation) && isOne(t.GeometricScaling)
}

func translate(v *geom.Vector3) *geom.Matrix4 { return geom.NewTranslateMatrix4(v.X, v.Y, v.Z) }
func scaling(v *geom.Vector3) *geom.Matrix4   { return geom.NewScaleMatrix4(v.X, v.Y, v.Z) }

// NodeMatrix composes the local transform under the FBX convention:
//
//	T * Roff * Rp * Rpre * R * Rpost^-1 * Rp^-1 * Soff * Sp * S * Sp^-1
//
// Pre/post rotation always use XYZ order; only R follows RotationOrder.
func (t *Transforms) NodeMatrix(opts *Options) *geom.Matrix4 {
	post := geom.NewEulerRotationMatrix4(t.PostRotation, geom.RotationOrderXYZ)
	if !opts.NoPostRotationInverse {
		// pure rotation, transpose is the inverse
		post = post.Transposed()
	}
	m := translate(t.Translation)
	m = m.Mul(translate(t.RotationOffset))
	m = m.Mul(translate(t.RotationPivot))
	m = m.Mul(geom.NewEulerRotationMatrix4(t.PreRotation, geom.RotationOrderXYZ))
	m = m.Mul(geom.NewEulerRotationMatrix4(t.Rotation, t.RotationOrder))
	m = m.Mul(post)
	m = m.Mul(translate(t.RotationPivot.Negate()))
	m = m.Mul(translate(t.ScalingOffset))
	m = m.Mul(translate(t.ScalingPivot))
	m = m.Mul(scaling(t.Scaling))
	m = m.Mul(translate(t.ScalingPivot.Negate()))
	return m
}

// GeometryMatrix is the geometric transform between node and mesh data.
func (t *Transforms) GeometryMatrix() *geom.Matrix4 {
	return translate(t.GeometricTranslation).
		Mul(geom.NewEulerRotationMatrix4(t.GeometricRotation, geom.RotationOrderXYZ)).
		Mul(scaling(t.GeometricScaling))
}

// CleanMatrix is the residue left on the node after baking: the pure
// translation offsets, so the mesh origin keeps its world position.
func (t *Transforms) CleanMatrix() *geom.Matrix4 {
	return translate(t.Translation).
		Mul(translate(t.RotationOffset)).
		Mul(translate(t.ScalingOffset))
}

// BakeMatrix is the matrix folded into the geometry:
// Clean^-1 * Node * Geometric.
func (t *Transforms) BakeMatrix(opts *Options) (*geom.Matrix4, error) {
	cleanInv, err := t.CleanMatrix().Inverse()
	if err != nil {
		return nil, err
	}
	return cleanInv.Mul(t.NodeMatrix(opts)).Mul(t.GeometryMatrix()), nil
}
