package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/timetick"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644))
	return dir
}

func TestResolveDefaults(t *testing.T) {
	r, err := Resolve(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultFPS), r.FPS)
	assert.Equal(t, UnitSeconds, r.Unit)
	assert.Equal(t, timetick.FromFrames(1, DefaultFPS), r.Step)
	assert.Equal(t, float32(DefaultTolerance), r.Tolerance)
	assert.Equal(t, DefaultPrecision, r.Precision)
}

func TestResolveFromFile(t *testing.T) {
	dir := writeConfig(t, `
timeline:
  fps: 24
  unit: Frames
sample:
  step: 0.5
match:
  tolerance: 0.01
output:
  precision: 0
`)
	r, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, 24.0, r.FPS)
	assert.Equal(t, UnitFrames, r.Unit)
	assert.Equal(t, timetick.New(0.5), r.Step)
	assert.Equal(t, float32(0.01), r.Tolerance)
	assert.Equal(t, 0, r.Precision)
	assert.Equal(t, dir, r.Dir)
}

func TestResolveStepFollowsFPS(t *testing.T) {
	r, err := Resolve(writeConfig(t, "timeline:\n  fps: 60\n"))
	require.NoError(t, err)
	assert.Equal(t, timetick.FromFrames(1, 60), r.Step)
}

func TestFrameDuration(t *testing.T) {
	r, err := Resolve(writeConfig(t, "timeline:\n  fps: 1e9\n"))
	require.NoError(t, err)
	assert.Equal(t, time.Nanosecond, r.FrameDuration())

	r, err = Resolve(writeConfig(t, "timeline:\n  fps: 50\n"))
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, r.FrameDuration())
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative fps", "timeline:\n  fps: -1\n"},
		{"sub-nanosecond frames", "timeline:\n  fps: 1e10\n"},
		{"unknown unit", "timeline:\n  unit: beats\n"},
		{"negative step", "sample:\n  step: -0.1\n"},
		{"negative tolerance", "match:\n  tolerance: -1\n"},
		{"precision too large", "output:\n  precision: 40\n"},
		{"malformed yaml", "timeline: [\n"},
		{"wrong type", "timeline:\n  fps: fast\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, kerrors.KindConfig, kerrors.KindOf(err))
		})
	}
}

func TestDirFromEnv(t *testing.T) {
	t.Setenv(EnvDir, "/tmp/keyframe-config")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/keyframe-config", dir)

	t.Setenv(EnvDir, "")
	dir, err = Dir()
	require.NoError(t, err)
	wd, _ := os.Getwd()
	assert.Equal(t, wd, dir)
}

func TestTimeConversion(t *testing.T) {
	seconds := &Resolved{FPS: 30, Unit: UnitSeconds, Precision: 2}
	got, err := seconds.ParseTime("1.5")
	require.NoError(t, err)
	assert.Equal(t, timetick.New(1.5), got)
	assert.Equal(t, "1.50", seconds.FormatTime(got))

	frames := &Resolved{FPS: 30, Unit: UnitFrames, Precision: 1}
	got, err = frames.ParseTime("60")
	require.NoError(t, err)
	assert.Equal(t, timetick.New(2), got)
	assert.Equal(t, "60.0", frames.FormatTime(got))
	assert.Equal(t, "3.1", frames.FormatValue(3.14159))

	_, err = frames.ParseTime("soon")
	assert.Error(t, err)
}
