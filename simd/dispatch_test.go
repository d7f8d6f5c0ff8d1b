package simd

import (
	"runtime"
	"testing"
)

// TestLevelString tests the level names.
func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelScalar, "scalar"},
		{LevelSSE2, "sse2"},
		{LevelNEON, "neon"},
		{LevelAVX2, "avx2"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

// TestDispatchBound verifies init left the process in a coherent state: the
// line kernels are always bound, and the selected level is one this
// architecture can actually produce.
func TestDispatchBound(t *testing.T) {
	if linesFwdImpl == nil || linesBwdImpl == nil {
		t.Fatal("line kernels not bound")
	}

	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName %q != CurrentLevel().String() %q", CurrentName(), CurrentLevel().String())
	}

	switch CurrentLevel() {
	case LevelScalar:
		// Valid anywhere: non-vector platforms, or BYTEALG_NO_SIMD.
	case LevelSSE2, LevelAVX2:
		if runtime.GOARCH != "amd64" {
			t.Errorf("level %v on %s", CurrentLevel(), runtime.GOARCH)
		}
		if fillImpl == nil {
			t.Error("fill kernel not bound at a vector level")
		}
	case LevelNEON:
		if runtime.GOARCH != "arm64" {
			t.Errorf("level %v on %s", CurrentLevel(), runtime.GOARCH)
		}
		if fillImpl == nil {
			t.Error("fill kernel not bound at a vector level")
		}
	default:
		t.Errorf("unexpected level %v", CurrentLevel())
	}
}

// TestNoSIMDEnv tests the environment override parsing.
func TestNoSIMDEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"anything", true},
		{"0", false},
		{"false", false},
		{"False", false},
	}

	for _, tt := range tests {
		t.Run("val_"+tt.val, func(t *testing.T) {
			t.Setenv("BYTEALG_NO_SIMD", tt.val)
			if got := noSIMDEnv(); got != tt.want {
				t.Errorf("BYTEALG_NO_SIMD=%q: got %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
