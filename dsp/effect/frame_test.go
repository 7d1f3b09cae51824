package effect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-automation/dsp/bounded"
	"github.com/cwbudde/algo-automation/dsp/core"
)

func TestFrameAddScale(t *testing.T) {
	f := Frame{Left: 0.25, Right: -0.5}

	sum := f.Add(Frame{Left: 0.25, Right: 0.25})
	if sum.Left != 0.5 || sum.Right != -0.25 {
		t.Fatalf("Add = %+v", sum)
	}

	scaled := f.Scale(2)
	if scaled.Left != 0.5 || scaled.Right != -1 {
		t.Fatalf("Scale = %+v", scaled)
	}
}

func TestFramePannedExtremes(t *testing.T) {
	in := Frame{Left: 0.8, Right: 0.8}

	left := in.Panned(bounded.Left)
	if left.Left != in.Left {
		t.Fatalf("full left: left channel = %v, want full amplitude %v", left.Left, in.Left)
	}
	if left.Right != 0 {
		t.Fatalf("full left: right channel = %v, want 0", left.Right)
	}

	right := in.Panned(bounded.Right)
	if right.Right != in.Right || right.Left != 0 {
		t.Fatalf("full right: %+v", right)
	}
}

func TestFramePannedCenterConstantPower(t *testing.T) {
	in := Frame{Left: 1, Right: 1}
	center := in.Panned(bounded.Center)

	want := math.Sqrt(0.5)
	if !core.NearlyEqual(float64(center.Left), want, 1e-6) {
		t.Fatalf("center: left = %v, want %v", center.Left, want)
	}
	if center.Left != center.Right {
		t.Fatalf("center not symmetric: %+v", center)
	}

	// |L|^2 + |R|^2 stays constant across the sweep
	for _, p := range []bounded.Panning{-1, -0.5, 0, 0.25, 1} {
		out := in.Panned(p)
		power := float64(out.Left)*float64(out.Left) + float64(out.Right)*float64(out.Right)
		if !core.NearlyEqual(power, 1, 1e-6) {
			t.Fatalf("pan %v: total power = %v, want 1", p, power)
		}
	}
}
