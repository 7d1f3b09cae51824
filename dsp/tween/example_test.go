package tween_test

import (
	"fmt"

	"github.com/cwbudde/algo-automation/dsp/tween"
)

func ExampleTween_Lerp() {
	tw := tween.Tween{Duration: 1, Easing: tween.Linear, Direction: tween.In}

	for _, elapsed := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Println(tw.Lerp(0, 10, elapsed))
	}

	// Output:
	// 0
	// 2.5
	// 5
	// 7.5
	// 10
}

func ExampleEasing() {
	fmt.Println(tween.Linear.Apply(0.5))
	fmt.Println(tween.PowI(2).Apply(0.5))
	fmt.Println(tween.PowF(3).Apply(0.5))

	// Output:
	// 0.5
	// 0.25
	// 0.125
}
