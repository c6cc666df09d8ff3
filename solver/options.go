// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Defaults applied by DefaultOptions.
const (
	DefaultAccuracy      = 1e-10
	DefaultMaxIterations = 1000
)

// ErrBadConfig is returned by DecodeConfig and Config.Options for values
// that cannot configure a solver.
var ErrBadConfig = errors.New("solver: invalid configuration")

// Clock reports the current time. The zero Options use the wall clock.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Options bounds a solver run.
type Options struct {
	// Accuracy is the convergence tolerance on x.
	Accuracy float64
	// MaxIterations caps the number of iterations.
	MaxIterations int
	// MaxDuration caps wall-clock time; zero means no ceiling.
	MaxDuration time.Duration
	// Clock supplies timestamps for MaxDuration.
	Clock Clock
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns accuracy 1e-10, 1000 iterations, no time ceiling
// and the wall clock.
func DefaultOptions() Options {
	return Options{
		Accuracy:      DefaultAccuracy,
		MaxIterations: DefaultMaxIterations,
		Clock:         wallClock{},
	}
}

// WithAccuracy sets the tolerance. Panics if acc is not a positive finite
// number.
func WithAccuracy(acc float64) Option {
	if !(acc > 0) || math.IsInf(acc, 1) {
		panic(fmt.Sprintf("solver: WithAccuracy(%v): accuracy must be positive and finite", acc))
	}

	return func(o *Options) { o.Accuracy = acc }
}

// WithMaxIterations sets the iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("solver: WithMaxIterations(%d): need at least one iteration", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithMaxDuration sets the time ceiling; zero disables it. Panics if d < 0.
func WithMaxDuration(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("solver: WithMaxDuration(%v): negative duration", d))
	}

	return func(o *Options) { o.MaxDuration = d }
}

// WithClock injects the time source. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Config is the declarative form of Options, e.g. read from JSON or YAML.
// Zero fields keep their defaults.
type Config struct {
	Accuracy      float64       `mapstructure:"accuracy"`
	MaxIterations int           `mapstructure:"max_iterations"`
	MaxDuration   time.Duration `mapstructure:"max_duration"`
}

// DecodeConfig decodes raw into a Config. max_duration accepts a Go
// duration string ("250ms") or an integer count of nanoseconds. Unknown
// keys are rejected.
func DecodeConfig(raw map[string]any) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err = dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return cfg, nil
}

// Options converts c into functional options, validating every set field.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Accuracy != 0 {
		if !(c.Accuracy > 0) || math.IsInf(c.Accuracy, 1) {
			return nil, fmt.Errorf("%w: accuracy %v", ErrBadConfig, c.Accuracy)
		}
		opts = append(opts, WithAccuracy(c.Accuracy))
	}
	if c.MaxIterations != 0 {
		if c.MaxIterations < 0 {
			return nil, fmt.Errorf("%w: max_iterations %d", ErrBadConfig, c.MaxIterations)
		}
		opts = append(opts, WithMaxIterations(c.MaxIterations))
	}
	if c.MaxDuration != 0 {
		if c.MaxDuration < 0 {
			return nil, fmt.Errorf("%w: max_duration %v", ErrBadConfig, c.MaxDuration)
		}
		opts = append(opts, WithMaxDuration(c.MaxDuration))
	}

	return opts, nil
}
