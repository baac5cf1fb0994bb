package fastgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(1, 2), Pt(0, 0).Midpoint(Pt(2, 4)))
	diff(t, Pt(-0.5, 0.5), Pt(-3, 1).Midpoint(Pt(2, 0)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointAngle(t *testing.T) {
	tests := []struct {
		p0, p1 Point
		want   float64
	}{
		{Pt(0, 0), Pt(1, 0), 0},
		{Pt(0, 0), Pt(0, 1), math.Pi / 2},
		{Pt(1, 1), Pt(0, 1), math.Pi},
		{Pt(1, 1), Pt(0, 0), -3 * math.Pi / 4},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.p0.Angle(tt.p1), cmpopts.EquateApprox(0, 1e-15))
	}
}

func TestPointRound(t *testing.T) {
	diff(t, Pt(2, -3), Pt(1.5, -2.5).Round())
	diff(t, Pt(0, 7), Pt(0.49, 6.51).Round())
}

func TestPointString(t *testing.T) {
	if s := Pt(1.5, -2).String(); s != "(1.5, -2)" {
		t.Errorf("got %q", s)
	}
}

func TestPointIsNaN(t *testing.T) {
	nan := float32(math.NaN())
	if Pt(0, 0).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(nan, 0).IsNaN() || !Pt(0, nan).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
	if !(CubicBez{P2: Pt(nan, 0)}).IsNaN() {
		t.Error("cubic isn't NaN but should be")
	}
	if !(QuadBez{P1: Pt(0, nan)}).IsNaN() {
		t.Error("quadratic isn't NaN but should be")
	}
}
