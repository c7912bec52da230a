package types

import "testing"

func TestVec3Cross(t *testing.T) {
	type spec struct {
		a, b Vec3
		exp  Vec3
	}
	specs := []spec{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 0, 1}, Vec3{0, -1, 0}, Vec3{1, 0, 0}},
		{Vec3{0, 1, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 0}},
	}

	for index, s := range specs {
		out := s.a.Cross(s.b)
		if !ApproxEqual(out, s.exp, 1e-6) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, out)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if !ApproxEqual(v, Vec3{0.6, 0, 0.8}, 1e-6) {
		t.Fatalf("expected normalized vector to be (0.6, 0, 0.8); got %v", v)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Fatalf("expected zero vector to stay zero; got %v", zero)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(-1, 0.5, 2)

	if out := a.Add(b); out != (Vec3{0, 2.5, 5}) {
		t.Fatalf("expected add to be (0, 2.5, 5); got %v", out)
	}
	if out := a.Sub(b); out != (Vec3{2, 1.5, 1}) {
		t.Fatalf("expected sub to be (2, 1.5, 1); got %v", out)
	}
	if out := a.Mul(2); out != (Vec3{2, 4, 6}) {
		t.Fatalf("expected mul to be (2, 4, 6); got %v", out)
	}
	if out := a.Neg(); out != (Vec3{-1, -2, -3}) {
		t.Fatalf("expected neg to be (-1, -2, -3); got %v", out)
	}
	if out := a.Dot(b); out != 6 {
		t.Fatalf("expected dot to be 6; got %f", out)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	coord := XY(0.25, 0.5).Mul(2).Sub(XY(1, 1))
	if coord != (Vec2{-0.5, 0}) {
		t.Fatalf("expected (-0.5, 0); got %v", coord)
	}
	if d := coord.Add(XY(1, 2)).Dot(XY(2, 1)); d != 3 {
		t.Fatalf("expected dot to be 3; got %f", d)
	}
}
