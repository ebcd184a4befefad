package geom

type RotationOrder int

// FBX eOrder values.
const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderXZY
	RotationOrderYZX
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX
)

// NewEulerRotationMatrix4 composes the single-axis rotations named by the
// order, first-named axis applied first. Angles in degrees. Unknown orders
// behave as XYZ.
func NewEulerRotationMatrix4(v *Vector3, order RotationOrder) *Matrix4 {
	rx := NewRotationXMatrix4(v.X)
	ry := NewRotationYMatrix4(v.Y)
	rz := NewRotationZMatrix4(v.Z)
	switch order {
	case RotationOrderXZY:
		return ry.Mul(rz).Mul(rx)
	case RotationOrderYZX:
		return rx.Mul(rz).Mul(ry)
	case RotationOrderYXZ:
		return rz.Mul(rx).Mul(ry)
	case RotationOrderZXY:
		return ry.Mul(rx).Mul(rz)
	case RotationOrderZYX:
		return rx.Mul(ry).Mul(rz)
	default:
		return rz.Mul(ry).Mul(rx)
	}
}
