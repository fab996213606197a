package grades

import "testing"

func TestPointsCoverScale(t *testing.T) {
	if len(Valid) != 14 {
		t.Fatalf("expected 14 grades, got %d", len(Valid))
	}
	for _, g := range Valid {
		p, ok := Points[g]
		if !ok {
			t.Fatalf("grade %q missing from Points", g)
		}
		if p < 0.0 || p > 4.0 {
			t.Fatalf("grade %q point %v out of range", g, p)
		}
	}
}

func TestNonCreditGrades(t *testing.T) {
	for _, g := range []string{"F", "W", "I"} {
		if got := PointFor(g); got != 0.0 {
			t.Fatalf("PointFor(%q) = %v, want 0.0", g, got)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("B+") {
		t.Fatal("B+ should be valid")
	}
	for _, g := range []string{"", "E", "A++", "b+", "3.3"} {
		if IsValid(g) {
			t.Fatalf("%q should not be valid", g)
		}
	}
}

func TestLetterFor(t *testing.T) {
	cases := []struct {
		gpa  float64
		want string
	}{
		{4.0, "A+"},
		{3.8, "A-"},
		{3.3, "B+"},
		{3.15, "B"},
		{2.0, "C"},
		{1.0, "D"},
		{0.5, "F"},
	}
	for _, c := range cases {
		if got := LetterFor(c.gpa); got != c.want {
			t.Errorf("LetterFor(%v) = %q, want %q", c.gpa, got, c.want)
		}
	}
}
