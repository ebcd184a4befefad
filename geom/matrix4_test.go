package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b *Vector3) bool {
	return a.Sub(b).Len() < eps
}

func TestMatrix4Inverse(t *testing.T) {
	m := NewTranslateMatrix4(1, 2, 3).
		Mul(NewRotationZMatrix4(30)).
		Mul(NewScaleMatrix4(2, 1, 0.5))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	id := m.Mul(inv)
	want := NewMatrix4()
	for i := range id {
		if math.Abs(id[i]-want[i]) > eps {
			t.Errorf("m*m^-1 [%d]: %v != %v", i, id[i], want[i])
		}
	}
}

func TestMatrix4InverseSingular(t *testing.T) {
	m := NewScaleMatrix4(0, 1, 1)
	if _, err := m.Inverse(); err != ErrSingularMatrix {
		t.Error("expected ErrSingularMatrix, got", err)
	}
}

func TestMatrix4Det3(t *testing.T) {
	if d := NewScaleMatrix4(2, 3, 4).Det3(); math.Abs(d-24) > eps {
		t.Error("det3: ", d)
	}
	// mirror has a negative determinant
	if d := NewScaleMatrix4(-1, 1, 1).Mul(NewRotationYMatrix4(45)).Det3(); d >= 0 {
		t.Error("mirror det3 not negative: ", d)
	}
	// translation does not contribute
	if d := NewTranslateMatrix4(5, 6, 7).Det3(); math.Abs(d-1) > eps {
		t.Error("det3 with translation: ", d)
	}
}

func TestMatrix4ApplyTo(t *testing.T) {
	v := NewRotationXMatrix4(90).ApplyTo(NewVector3(0, 1, 0))
	if !vecNear(v, NewVector3(0, 0, 1)) {
		t.Error("rotX(90) * (0,1,0): ", v)
	}
	v = NewTranslateMatrix4(1, 2, 3).ApplyTo(NewVector3(1, 1, 1))
	if !vecNear(v, NewVector3(2, 3, 4)) {
		t.Error("translate: ", v)
	}
	// ApplyToDir ignores translation
	v = NewTranslateMatrix4(1, 2, 3).ApplyToDir(NewVector3(1, 1, 1))
	if !vecNear(v, NewVector3(1, 1, 1)) {
		t.Error("dir with translation: ", v)
	}
}

func TestNormalMatrix(t *testing.T) {
	// non-uniform scale: normals must use the inverse-transpose
	m := NewScaleMatrix4(2, 1, 1)
	nm, err := m.NormalMatrix()
	if err != nil {
		t.Fatal(err)
	}
	n := nm.ApplyToDir(NewVector3(1, 1, 0)).Normalize()
	// plane x+y=c scaled by (2,1,1) has normal (1,2,0)/sqrt(5)
	want := NewVector3(1, 2, 0).Normalize()
	if !vecNear(n, want) {
		t.Error("normal: ", n, want)
	}

	// translation must not leak in
	nm, err = NewTranslateMatrix4(10, 20, 30).NormalMatrix()
	if err != nil {
		t.Fatal(err)
	}
	if !vecNear(nm.ApplyTo(NewVector3(0, 0, 0)), NewVector3(0, 0, 0)) {
		t.Error("normal matrix carries translation")
	}

	if _, err := NewScaleMatrix4(1, 0, 1).NormalMatrix(); err != ErrSingularMatrix {
		t.Error("expected ErrSingularMatrix, got", err)
	}
}
