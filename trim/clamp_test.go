package trim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimits_ClampLeft(t *testing.T) {
	l := Limits{Width: 400, MinPx: 20, MaxPx: 200}
	tests := []struct {
		name      string
		start     float64
		end       float64
		delta     float64
		wantStart float64
		wantOK    bool
	}{
		{"free move", 250, 400, 10, 260, true},
		{"clamped by min length", 250, 400, 200, 380, true},
		{"clamped by max length", 250, 400, -100, 200, true},
		{"at max length moving out", 200, 400, -5, 200, false},
		{"at min length moving in", 380, 400, 5, 380, false},
		{"at max length moving in", 200, 400, 5, 205, true},
		{"zero delta", 250, 400, 0, 250, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.ClampLeft(tt.start, tt.end, tt.delta)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, got)
		})
	}
}

func TestLimits_ClampLeft_NeverBelowZero(t *testing.T) {
	l := Limits{Width: 400, MinPx: 0, MaxPx: 400}
	got, ok := l.ClampLeft(5, 100, -50)
	assert.True(t, ok)
	assert.Equal(t, 0.0, got)

	got, ok = l.ClampLeft(0, 100, -50)
	assert.False(t, ok)
	assert.Equal(t, 0.0, got)
}

func TestLimits_ClampLeft_MaxLengthScenario(t *testing.T) {
	// Fixed-length selection of 200px ending at 400: the start can only sit at 200.
	l := Limits{Width: 400, MinPx: 200, MaxPx: 200}
	got, ok := l.ClampLeft(0, 400, 300)
	assert.True(t, ok)
	assert.Equal(t, 200.0, got)
}

func TestLimits_ClampLeft_Idempotent(t *testing.T) {
	l := Limits{Width: 400, MinPx: 0, MaxPx: 200}
	start := 260.0
	for i := 0; i < 5; i++ {
		if next, ok := l.ClampLeft(start, 400, -50); ok {
			start = next
		}
	}
	assert.Equal(t, 200.0, start)

	next, ok := l.ClampLeft(start, 400, -50)
	assert.False(t, ok)
	assert.Equal(t, 200.0, next)
}

func TestLimits_ClampRight(t *testing.T) {
	l := Limits{Width: 400, MinPx: 20, MaxPx: 200}
	tests := []struct {
		name    string
		start   float64
		end     float64
		delta   float64
		wantEnd float64
		wantOK  bool
	}{
		{"free move", 100, 200, 10, 210, true},
		{"clamped by max length", 100, 200, 500, 300, true},
		{"clamped by min length", 100, 200, -500, 120, true},
		{"at max length moving out", 100, 300, 5, 300, false},
		{"at min length moving in", 100, 120, -5, 120, false},
		{"clamped by strip width", 300, 390, 50, 400, true},
		{"at strip edge", 300, 400, 1, 400, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.ClampRight(tt.start, tt.end, tt.delta)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEnd, got)
		})
	}
}

func TestLimits_ClampCenter(t *testing.T) {
	l := Limits{Width: 400, MinPx: 0, MaxPx: 400}
	tests := []struct {
		name      string
		start     float64
		end       float64
		delta     float64
		wantStart float64
		wantEnd   float64
		wantOK    bool
	}{
		{"free move right", 100, 200, 30, 130, 230, true},
		{"free move left", 100, 200, -30, 70, 170, true},
		{"stops at left edge", 20, 120, -50, 0, 100, true},
		{"stops at right edge", 250, 380, 50, 270, 400, true},
		{"already at left edge", 0, 100, -10, 0, 100, false},
		{"already at right edge", 300, 400, 10, 300, 400, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e, ok := l.ClampCenter(tt.start, tt.end, tt.delta)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, s)
			assert.Equal(t, tt.wantEnd, e)
		})
	}
}

func TestLimits_ClampCenter_PreservesLength(t *testing.T) {
	l := Limits{Width: 400, MinPx: 0, MaxPx: 400}
	start, end := 100.0, 175.0
	for _, d := range []float64{40, -300, 17, 500, -3, 250, -1000} {
		if s, e, ok := l.ClampCenter(start, end, d); ok {
			start, end = s, e
		}
		assert.Equal(t, 75.0, end-start)
		assert.GreaterOrEqual(t, start, 0.0)
		assert.LessOrEqual(t, end, 400.0)
	}
}
