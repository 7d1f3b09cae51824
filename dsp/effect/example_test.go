package effect_test

import (
	"fmt"

	"github.com/cwbudde/algo-automation/dsp/bounded"
	"github.com/cwbudde/algo-automation/dsp/effect"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

func ExamplePanningControl() {
	fx, handle, err := effect.NewPanningControl()
	if err != nil {
		panic(err)
	}

	// control thread: sweep from center to full right over one second
	handle.SetPanning(bounded.Right, tween.Tween{
		Duration:  1,
		Easing:    tween.Linear,
		Direction: tween.In,
	})

	// audio thread: one block of four quarter-second frames
	fx.StartBlock()

	info := &param.Info{SampleRate: 4}
	for range 4 {
		fx.Process(effect.Frame{Left: 1, Right: 1}, 0.25, info)
		fmt.Println(fx.Panning())
	}

	// Output:
	// 0.25
	// 0.5
	// 0.75
	// 1
}
