package sizes

import "testing"

func TestUniformBoundsAndDeterminism(t *testing.T) {
	a := NewUniform(0.05, 0.1, 7)
	b := NewUniform(0.05, 0.1, 7)
	for i := 0; i < 1000; i++ {
		va := a.Sample()
		if va < 0.05 || va >= 0.1 {
			t.Fatalf("draw %d: %v outside [0.05, 0.1)", i, va)
		}
		if vb := b.Sample(); vb != va {
			t.Fatalf("draw %d: seeded samplers diverged (%v vs %v)", i, va, vb)
		}
	}
}

func TestUniformSeedsDiffer(t *testing.T) {
	a := NewUniform(0, 1, 1)
	b := NewUniform(0, 1, 2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Sample() != b.Sample() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical first 10 draws")
	}
}

func TestLogNormalAlwaysPositive(t *testing.T) {
	l := NewLogNormal(-3, 0.5, 11)
	for i := 0; i < 1000; i++ {
		if v := l.Sample(); v <= 0 {
			t.Fatalf("draw %d: non-positive value %v", i, v)
		}
	}
}

func TestNormalDeterminism(t *testing.T) {
	a := NewNormal(0.1, 0.01, 3)
	b := NewNormal(0.1, 0.01, 3)
	for i := 0; i < 100; i++ {
		if a.Sample() != b.Sample() {
			t.Fatalf("draw %d: seeded samplers diverged", i)
		}
	}
}

func TestConstant(t *testing.T) {
	c := NewConstant(0.25)
	for i := 0; i < 5; i++ {
		if v := c.Sample(); v != 0.25 {
			t.Errorf("Sample = %v, want 0.25", v)
		}
	}
}
