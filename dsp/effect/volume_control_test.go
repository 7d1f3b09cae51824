package effect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-automation/dsp/core"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

func TestNewVolumeControlValidation(t *testing.T) {
	if _, _, err := NewVolumeControl(WithInitialVolumeDB(-6)); err != nil {
		t.Fatalf("valid construction returned error: %v", err)
	}

	bad := []VolumeControlOption{
		WithInitialVolumeDB(math.NaN()),
		WithVolumeCommandCapacity(-1),
	}
	for _, opt := range bad {
		if _, _, err := NewVolumeControl(opt); err == nil {
			t.Fatal("expected a construction error")
		}
	}
}

func TestVolumeControlScalesByDB(t *testing.T) {
	fx, _, err := NewVolumeControl(WithInitialVolumeDB(-6))
	if err != nil {
		t.Fatal(err)
	}

	fx.StartBlock()
	out := fx.Process(Frame{Left: 1, Right: 1}, 1.0/48000, &param.Info{})

	want := core.DBToLinear(-6) // ~0.5012
	if !core.NearlyEqual(float64(out.Left), want, 1e-6) {
		t.Fatalf("left = %v, want %v", out.Left, want)
	}
	if out.Left != out.Right {
		t.Fatalf("channels diverged: %+v", out)
	}
}

func TestVolumeControlFade(t *testing.T) {
	fx, handle, err := NewVolumeControl(WithInitialVolumeDB(0))
	if err != nil {
		t.Fatal(err)
	}

	handle.SetVolume(-12, tween.Tween{Duration: 1, Easing: tween.Linear})
	fx.StartBlock()

	info := &param.Info{}
	fx.Process(Frame{Left: 1, Right: 1}, 0.5, info)

	if !core.NearlyEqual(fx.VolumeDB(), -6, 1e-9) {
		t.Fatalf("VolumeDB() = %v, want -6 at the fade midpoint", fx.VolumeDB())
	}

	fx.Process(Frame{Left: 1, Right: 1}, 0.5, info)
	if fx.VolumeDB() != -12 {
		t.Fatalf("VolumeDB() = %v, want -12 at fade end", fx.VolumeDB())
	}
}
