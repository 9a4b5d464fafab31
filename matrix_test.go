package svgfx

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
	x, y := m.TransformPoint(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("identity transform moved point to (%v, %v)", x, y)
	}
}

func TestMatrixMultiplyAppliesOtherFirst(t *testing.T) {
	// Scale then translate: point (1, 1) -> (2, 2) -> (12, 22).
	m := Translate(10, 20).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 22 {
		t.Errorf("got (%v, %v), want (12, 22)", x, y)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(math.Pi / 6)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix should be invertible")
	}
	x, y := inv.TransformPoint(m.TransformPoint(7, 11))
	if math.Abs(x-7) > 1e-9 || math.Abs(y-11) > 1e-9 {
		t.Errorf("round trip gave (%v, %v), want (7, 11)", x, y)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("singular matrix must not invert")
	}
	if Scale(1, 0).IsInvertible() {
		t.Error("singular matrix must not report invertible")
	}
}

func TestMatrixTransformDistanceIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(3, 2))
	dx, dy := m.TransformDistance(1, 1)
	if dx != 3 || dy != 2 {
		t.Errorf("got (%v, %v), want (3, 2)", dx, dy)
	}
}

func TestMatrixTransformRect(t *testing.T) {
	r := Rotate(math.Pi / 2).TransformRect(NewRect(0, 0, 2, 1))
	want := NewRect(-1, 0, 0, 2)
	const eps = 1e-9
	if math.Abs(r.MinX-want.MinX) > eps || math.Abs(r.MinY-want.MinY) > eps ||
		math.Abs(r.MaxX-want.MaxX) > eps || math.Abs(r.MaxY-want.MaxY) > eps {
		t.Errorf("rotated rect = %+v, want %+v", r, want)
	}
}
