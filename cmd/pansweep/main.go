// Command pansweep renders an automated stereo pan sweep to a WAV file.
//
// It synthesizes a sine tone, routes it through a volume and a panning
// control effect, and drives both from the control side through their
// command channels while the renderer consumes blocks: the tone fades
// in, sweeps from the left speaker to the right and back, and fades
// out at the tail.
//
// Usage:
//
//	pansweep [flags]
//
// Examples:
//
//	pansweep
//	pansweep -freq 220 -dur 8 -out sweep.wav
//	pansweep -rate 44100 -block 256
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-automation/dsp/bounded"
	"github.com/cwbudde/algo-automation/dsp/core"
	"github.com/cwbudde/algo-automation/dsp/effect"
	"github.com/cwbudde/algo-automation/dsp/render"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

func main() {
	var (
		out      = flag.String("out", "pansweep.wav", "output WAV path")
		rate     = flag.Int("rate", 48000, "sample rate in Hz")
		freq     = flag.Float64("freq", 440, "tone frequency in Hz")
		duration = flag.Float64("dur", 4, "total duration in seconds")
		block    = flag.Int("block", 512, "render block size in frames")
	)
	flag.Parse()

	err := run(*out, *rate, *freq, *duration, *block)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pansweep:", err)
		os.Exit(1)
	}
}

func run(out string, rate int, freq, duration float64, block int) error {
	// start fully attenuated so the fade-in has somewhere to come from
	volume, volumeHandle, err := effect.NewVolumeControl(effect.WithInitialVolumeDB(-80))
	if err != nil {
		return err
	}

	panning, panHandle, err := effect.NewPanningControl(
		effect.WithInitialPanning(bounded.Left),
	)
	if err != nil {
		return err
	}

	chain := effect.NewChain(0)
	chain.Add(volume)
	chain.Add(panning)

	r, err := render.New(chain, float64(rate), render.WithBlockSize(block))
	if err != nil {
		return err
	}

	half := int(duration * float64(rate) / 2)
	frames := tone(freq, float64(rate), 2*half)

	// first half: fade in and sweep to the right speaker
	volumeHandle.SetVolume(0, tween.Tween{Duration: 0.25, Easing: tween.Linear})
	panHandle.SetPanning(bounded.Right, tween.Tween{
		Duration:  duration / 2,
		Easing:    tween.PowI(2),
		Direction: tween.InOut,
	})

	leftA, rightA := r.Render(frames[:half])

	// second half: sweep back to the left speaker
	panHandle.SetPanning(bounded.Left, tween.Tween{
		Duration:  duration / 2,
		Easing:    tween.PowI(2),
		Direction: tween.InOut,
	})

	leftB, rightB := r.Render(frames[half:])

	left := append(leftA, leftB...)
	right := append(rightA, rightB...)

	// fade the tail to avoid a click at the end
	tail := min(rate/2, len(left))
	fade := tween.Tween{Duration: 1, Easing: tween.PowI(2), Direction: tween.Out}
	render.Fade(left[len(left)-tail:], 1, 0, fade)
	render.Fade(right[len(right)-tail:], 1, 0, fade)

	err = writeWAV(out, rate, left, right)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s: %.1fs at %d Hz, %d frames\n",
		out, float64(len(left))/float64(rate), rate, len(left))

	if n := panHandle.Dropped() + volumeHandle.Dropped(); n > 0 {
		fmt.Printf("warning: %d control commands dropped\n", n)
	}

	return nil
}

func tone(freq, sampleRate float64, frames int) []effect.Frame {
	out := make([]effect.Frame, frames)

	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		v := float32(0.8 * math.Sin(step*float64(i)))
		out[i] = effect.Frame{Left: v, Right: v}
	}

	return out
}

func writeWAV(path string, rate int, left, right []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 2, 1)

	data := make([]int, 0, len(left)*2)
	for i := range left {
		data = append(data, pcm16(left[i]), pcm16(right[i]))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}

	err = enc.Write(buf)
	if err != nil {
		return err
	}

	return enc.Close()
}

func pcm16(v float64) int {
	return int(core.Clamp(v, -1, 1) * 32767)
}
