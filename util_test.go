package fastgeom

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// randomPoint returns a point within the coordinate range of a typical font,
// ±8192 units.
func randomPoint(r *rand.Rand) Point {
	return Pt(
		float32((r.Float64()-0.5)*16384),
		float32((r.Float64()-0.5)*16384),
	)
}
