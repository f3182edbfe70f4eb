package workers

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	t.Setenv(EnvOverride, "")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{
			name:       "CPU-bound task (1.0x multiplier)",
			multiplier: 1.0,
			minExpect:  1,
			maxExpect:  availableCPU,
		},
		{
			name:       "Mixed task (1.5x multiplier)",
			multiplier: 1.5,
			minExpect:  1,
			maxExpect:  int(float64(availableCPU) * 1.5),
		},
		{
			name:       "With limit lower than calculated",
			multiplier: 2.0,
			limit:      2,
			minExpect:  1,
			maxExpect:  2,
		},
		{
			name:       "Tiny multiplier still yields one worker",
			multiplier: 0.0001,
			minExpect:  1,
			maxExpect:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			assert.GreaterOrEqual(t, got, tt.minExpect)
			assert.LessOrEqual(t, got, tt.maxExpect)
		})
	}
}

func TestCountWithEnvOverride(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		limit    int
		expected int
	}{
		{name: "valid override", envValue: "6", limit: 0, expected: 6},
		{name: "override capped by limit", envValue: "100", limit: 10, expected: 10},
		{name: "invalid override ignored", envValue: "many", limit: 1, expected: 1},
		{name: "zero override ignored", envValue: "0", limit: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvOverride, tt.envValue)
			assert.Equal(t, tt.expected, Count(1.0, tt.limit))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvOverride, "")

	assert.Equal(t, 7, Resolve(7))
	assert.Equal(t, 1, Resolve(1))
	assert.Equal(t, Default, Resolve(-3))

	auto := Resolve(Auto)
	assert.GreaterOrEqual(t, auto, 1)
	assert.LessOrEqual(t, auto, MaxAuto)
}

func TestResolveExplicitIgnoresEnv(t *testing.T) {
	t.Setenv(EnvOverride, "3")
	assert.Equal(t, 12, Resolve(12))
	assert.Equal(t, 3, Resolve(Auto))
}
