package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	kerrors "github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// FileName is the optional per-directory configuration file.
const FileName = "keyframe.yaml"

// EnvDir overrides the directory keyframe.yaml is read from.
const EnvDir = "KEYFRAME_CONFIG_DIR"

// Config represents the optional keyframe.yaml configuration.
type Config struct {
	Timeline TimelineConfig `yaml:"timeline"`
	Sample   SampleConfig   `yaml:"sample"`
	Match    MatchConfig    `yaml:"match"`
	Output   OutputConfig   `yaml:"output"`
}

// TimelineConfig describes how times on the command line are read.
type TimelineConfig struct {
	FPS  float64 `yaml:"fps,omitempty"`
	Unit string  `yaml:"unit,omitempty"`
}

// SampleConfig contains defaults for the sample command.
type SampleConfig struct {
	Step float64 `yaml:"step,omitempty"`
}

// MatchConfig contains defaults for preset matching.
type MatchConfig struct {
	Tolerance float32 `yaml:"tolerance,omitempty"`
}

// OutputConfig controls number formatting.
type OutputConfig struct {
	Precision *int `yaml:"precision,omitempty"`
}

// Unit is the time unit used on the command line. Documents always store
// seconds.
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitFrames  Unit = "frames"
)

// Resolved contains resolved configuration values.
type Resolved struct {
	Dir       string
	FPS       float64
	Unit      Unit
	Step      timetick.TimeTick
	Tolerance float32
	Precision int
}

// Defaults.
const (
	DefaultFPS       = 30
	DefaultTolerance = 1e-3
	DefaultPrecision = 4
)

// Dir returns the configuration directory: $KEYFRAME_CONFIG_DIR if set,
// otherwise the working directory.
func Dir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvDir)); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// LoadOptional reads keyframe.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, kerrors.New("config.LoadOptional", kerrors.KindConfig,
			fmt.Errorf("failed to read %s: %w", FileName, err)).At(path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, kerrors.New("config.LoadOptional", kerrors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", FileName, err)).At(path)
	}

	return &cfg, nil
}

// Resolve loads keyframe.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Dir:       dir,
		FPS:       cfg.Timeline.FPS,
		Unit:      Unit(strings.ToLower(strings.TrimSpace(cfg.Timeline.Unit))),
		Tolerance: cfg.Match.Tolerance,
		Precision: DefaultPrecision,
	}
	if r.FPS == 0 {
		r.FPS = DefaultFPS
	}
	if r.Unit == "" {
		r.Unit = UnitSeconds
	}
	if r.Tolerance == 0 {
		r.Tolerance = DefaultTolerance
	}
	if cfg.Output.Precision != nil {
		r.Precision = *cfg.Output.Precision
	}
	if cfg.Sample.Step != 0 {
		r.Step = timetick.New(cfg.Sample.Step)
	} else {
		r.Step = timetick.FromFrames(1, r.FPS)
	}

	if err := r.validate(); err != nil {
		return nil, kerrors.New("config.Resolve", kerrors.KindConfig, err).At(filepath.Join(dir, FileName))
	}
	return r, nil
}

func (r *Resolved) validate() error {
	if !(r.FPS > 0) || math.IsInf(r.FPS, 0) {
		return fmt.Errorf("timeline.fps must be a positive number (got %v)", r.FPS)
	}
	if r.FrameDuration() < time.Nanosecond {
		return fmt.Errorf("timeline.fps must be at most %v (got %v)", float64(time.Second), r.FPS)
	}
	switch r.Unit {
	case UnitSeconds, UnitFrames:
	default:
		return fmt.Errorf("timeline.unit must be %q or %q (got %q)", UnitSeconds, UnitFrames, r.Unit)
	}
	if !(r.Step.Value() > 0) || !r.Step.IsFinite() {
		return fmt.Errorf("sample.step must be a positive number (got %v)", r.Step)
	}
	if !(r.Tolerance > 0) {
		return fmt.Errorf("match.tolerance must be positive (got %v)", r.Tolerance)
	}
	if r.Precision < 0 || r.Precision > 17 {
		return fmt.Errorf("output.precision must be between 0 and 17 (got %d)", r.Precision)
	}
	return nil
}

// FrameDuration returns the wall-clock length of one frame at FPS.
func (r *Resolved) FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / r.FPS)
}

// ParseTime reads a command-line time in the configured unit and returns it
// in seconds.
func (r *Resolved) ParseTime(s string) (timetick.TimeTick, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return timetick.Zero(), fmt.Errorf("invalid time %q", s)
	}
	if r.Unit == UnitFrames {
		return timetick.FromFrames(v, r.FPS), nil
	}
	return timetick.FromSeconds(v), nil
}

// FormatTime renders a time in the configured unit.
func (r *Resolved) FormatTime(t timetick.TimeTick) string {
	if r.Unit == UnitFrames {
		return strconv.FormatFloat(t.ToFrames(r.FPS), 'f', r.Precision, 64)
	}
	return strconv.FormatFloat(t.Seconds(), 'f', r.Precision, 64)
}

// FormatValue renders a value with the configured precision.
func (r *Resolved) FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', r.Precision, 64)
}
