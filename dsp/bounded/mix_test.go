package bounded

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMixSaturatingArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Mix
		expected Mix
	}{
		{name: "add in range", got: Mix(0.25).Add(0.25), expected: 0.5},
		{name: "add saturates", got: Mix(0.75).Add(0.75), expected: Wet},
		{name: "sub saturates", got: Mix(0.25).Sub(0.75), expected: Dry},
		{name: "mul saturates", got: Mix(0.5).Mul(4), expected: Wet},
		{name: "div in range", got: Mix(0.25).Div(0.5), expected: 0.5},
		{name: "neg saturates", got: Mix(0.5).Neg(), expected: Dry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Fatalf("got %v, want %v", tt.got, tt.expected)
			}
			if tt.got < Dry || tt.got > Wet {
				t.Fatalf("result %v escaped [0, 1]", tt.got)
			}
		})
	}
}

func TestMixInterpolate(t *testing.T) {
	if got := Dry.Interpolate(Wet, 0.25); got != 0.25 {
		t.Fatalf("Interpolate(.., 0.25) = %v, want 0.25", got)
	}
	if got := Mix(2).Interpolate(Mix(-1), 0); got != Wet {
		t.Fatalf("Interpolate clamps endpoints: got %v, want %v", got, Wet)
	}
}

func TestMixDeserialization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "zero", input: "0.0", ok: true},
		{name: "half", input: "0.5", ok: true},
		{name: "one", input: "1.0", ok: true},
		{name: "minus two", input: "-2.0", ok: false},
		{name: "two", input: "2.0", ok: false},
		{name: "one and a half", input: "1.5", ok: false},
		{name: "not a number", input: "NaN", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mix
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.ok && err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("Unmarshal(%s) = %v, want error", tt.input, m)
			}
		})
	}
}

func TestParseMix(t *testing.T) {
	if _, err := ParseMix(1.5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ParseMix(1.5) error = %v, want ErrOutOfRange", err)
	}

	m, err := ParseMix(0.5)
	if err != nil {
		t.Fatalf("ParseMix(0.5) returned error: %v", err)
	}
	if m != 0.5 {
		t.Fatalf("ParseMix(0.5) = %v", m)
	}
}
