package geom

import (
	"testing"
)

func TestEulerOrderXYZ(t *testing.T) {
	// XYZ order applies X first: composed matrix is Rz*Ry*Rx
	v := NewVector3(30, 40, 50)
	got := NewEulerRotationMatrix4(v, RotationOrderXYZ)
	want := NewRotationZMatrix4(50).Mul(NewRotationYMatrix4(40)).Mul(NewRotationXMatrix4(30))
	for i := range got {
		if diff := got[i] - want[i]; diff > eps || diff < -eps {
			t.Fatalf("XYZ [%d]: %v != %v", i, got[i], want[i])
		}
	}
}

func TestEulerOrders(t *testing.T) {
	v := NewVector3(90, 90, 0)
	p := NewVector3(1, 0, 0)

	// XYZ: Rx(90) then Ry(90): (1,0,0) -> (1,0,0) -> (0,0,-1)
	got := NewEulerRotationMatrix4(v, RotationOrderXYZ).ApplyTo(p)
	if !vecNear(got, NewVector3(0, 0, -1)) {
		t.Error("XYZ: ", got)
	}

	// ZXY: Rz(0), Rx(90), Ry(90): same path for this vector
	got = NewEulerRotationMatrix4(v, RotationOrderZXY).ApplyTo(p)
	if !vecNear(got, NewVector3(0, 0, -1)) {
		t.Error("ZXY: ", got)
	}

	// YXZ: Ry(90) then Rx(90): (1,0,0) -> (0,0,-1) -> (0,1,0)
	got = NewEulerRotationMatrix4(v, RotationOrderYXZ).ApplyTo(p)
	if !vecNear(got, NewVector3(0, 1, 0)) {
		t.Error("YXZ: ", got)
	}

	// unknown order behaves as XYZ
	got = NewEulerRotationMatrix4(v, RotationOrder(9)).ApplyTo(p)
	want := NewEulerRotationMatrix4(v, RotationOrderXYZ).ApplyTo(p)
	if !vecNear(got, want) {
		t.Error("unknown order: ", got, want)
	}
}

func TestEulerOrderInversePair(t *testing.T) {
	// reversing the order with negated angle sequence undoes the rotation
	v := NewVector3(10, 20, 30)
	m := NewEulerRotationMatrix4(v, RotationOrderXYZ)
	inv := NewEulerRotationMatrix4(v.Negate(), RotationOrderZYX)
	id := m.Mul(inv)
	want := NewMatrix4()
	for i := range id {
		if diff := id[i] - want[i]; diff > eps || diff < -eps {
			t.Fatalf("not identity [%d]: %v", i, id[i])
		}
	}
}
