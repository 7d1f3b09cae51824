package effect

import (
	"testing"

	"github.com/cwbudde/algo-automation/dsp/bounded"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

func TestNewPanningControlValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []PanningControlOption
		ok   bool
	}{
		{name: "defaults", ok: true},
		{name: "initial", opts: []PanningControlOption{WithInitialPanning(-0.5)}, ok: true},
		{name: "capacity", opts: []PanningControlOption{WithPanningCommandCapacity(4)}, ok: true},
		{name: "out of range initial", opts: []PanningControlOption{WithInitialPanning(2)}, ok: false},
		{name: "bad capacity", opts: []PanningControlOption{WithPanningCommandCapacity(0)}, ok: false},
		{name: "empty source id", opts: []PanningControlOption{WithPanningSource("", param.Mapping[bounded.Panning]{})}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, handle, err := NewPanningControl(tt.opts...)
			if tt.ok {
				if err != nil {
					t.Fatalf("NewPanningControl returned error: %v", err)
				}
				if fx == nil || handle == nil {
					t.Fatal("expected effect and handle")
				}
				return
			}

			if err == nil {
				t.Fatal("expected a construction error")
			}
		})
	}
}

func TestPanningControlImmediateFullLeft(t *testing.T) {
	fx, handle, err := NewPanningControl()
	if err != nil {
		t.Fatal(err)
	}

	if !handle.SetPanningImmediate(bounded.Left) {
		t.Fatal("command dropped on empty channel")
	}

	fx.StartBlock()

	info := &param.Info{SampleRate: 48000}
	out := fx.Process(Frame{Left: 0.8, Right: 0.8}, 1.0/48000, info)

	if out.Left != 0.8 {
		t.Fatalf("left channel = %v, want full input amplitude 0.8", out.Left)
	}
	if out.Right != 0 {
		t.Fatalf("right channel = %v, want 0", out.Right)
	}
}

func TestPanningControlTweenedSweep(t *testing.T) {
	fx, handle, err := NewPanningControl()
	if err != nil {
		t.Fatal(err)
	}

	handle.SetPanning(bounded.Right, tween.Tween{Duration: 1, Easing: tween.Linear, Direction: tween.In})
	fx.StartBlock()

	info := &param.Info{SampleRate: 4}
	in := Frame{Left: 1, Right: 1}

	var out Frame
	for range 4 {
		out = fx.Process(in, 0.25, info)
	}

	if fx.Panning() != bounded.Right {
		t.Fatalf("Panning() = %v, want %v after the sweep", fx.Panning(), bounded.Right)
	}
	if out.Right != 1 || out.Left != 0 {
		t.Fatalf("final frame = %+v, want full right", out)
	}
}

func TestPanningControlLastCommandWins(t *testing.T) {
	fx, handle, err := NewPanningControl()
	if err != nil {
		t.Fatal(err)
	}

	handle.SetPanning(bounded.Right, tween.Tween{Duration: 10, Easing: tween.Linear})
	handle.SetPanningImmediate(bounded.Left)

	fx.StartBlock()

	if fx.Panning() != bounded.Left {
		t.Fatalf("Panning() = %v, want %v (last command wins)", fx.Panning(), bounded.Left)
	}

	info := &param.Info{}
	fx.Process(Frame{Left: 1, Right: 1}, 0.25, info)
	if fx.Panning() != bounded.Left {
		t.Fatal("the discarded tween started anyway")
	}
}

func TestPanningControlOverflowReportsDrops(t *testing.T) {
	_, handle, err := NewPanningControl(WithPanningCommandCapacity(1))
	if err != nil {
		t.Fatal(err)
	}

	if !handle.SetPanningImmediate(bounded.Left) {
		t.Fatal("first command dropped")
	}
	if handle.SetPanningImmediate(bounded.Right) {
		t.Fatal("second command accepted past capacity")
	}
	if handle.Dropped() != 1 {
		t.Fatalf("Dropped() = %d, want 1", handle.Dropped())
	}
}

func TestPanningControlLinkedTarget(t *testing.T) {
	fx, handle, err := NewPanningControl()
	if err != nil {
		t.Fatal(err)
	}

	src := stubSource{"width": 1.0}
	info := &param.Info{Source: src}

	handle.SetPanningValue(param.FromParameter("width", param.Mapping[bounded.Panning]{
		InputRange:  [2]float64{0, 1},
		OutputRange: [2]bounded.Panning{bounded.Left, bounded.Right},
		ClampBottom: true,
		ClampTop:    true,
	}), tween.Tween{Duration: 0.5, Easing: tween.Linear})

	fx.StartBlock()
	for range 2 {
		fx.Process(Frame{Left: 1, Right: 1}, 0.25, info)
	}

	if fx.Panning() != bounded.Right {
		t.Fatalf("Panning() = %v, want %v from linked source", fx.Panning(), bounded.Right)
	}
}

type stubSource map[param.ID]float64

func (s stubSource) ParameterValue(id param.ID) (float64, bool) {
	v, ok := s[id]
	return v, ok
}

func BenchmarkPanningControlProcess(b *testing.B) {
	fx, handle, _ := NewPanningControl()
	handle.SetPanning(bounded.Right, tween.Tween{Duration: 1e9, Easing: tween.PowI(2), Direction: tween.InOut})
	fx.StartBlock()

	info := &param.Info{SampleRate: 48000}
	f := Frame{Left: 0.5, Right: 0.5}

	for b.Loop() {
		f = fx.Process(f, 1.0/48000, info)
	}

	_ = f
}
