// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/solver"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := solver.DecodeConfig(map[string]any{
		"accuracy":       1e-6,
		"max_iterations": "50",
		"max_duration":   "250ms",
	})
	require.NoError(t, err)
	assert.Equal(t, solver.Config{Accuracy: 1e-6, MaxIterations: 50, MaxDuration: 250 * time.Millisecond}, cfg)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	res, err := solver.Bisection(0.0, 1.0, func(x float64) float64 { return x - 0.3 }, opts...)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.X, 1e-6)
}

func TestDecodeConfig_Errors(t *testing.T) {
	_, err := solver.DecodeConfig(map[string]any{"tolerance": 1e-3})
	assert.ErrorIs(t, err, solver.ErrBadConfig)

	_, err = solver.DecodeConfig(map[string]any{"max_duration": "soon"})
	assert.ErrorIs(t, err, solver.ErrBadConfig)
}

func TestConfig_Options(t *testing.T) {
	opts, err := solver.Config{}.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = solver.Config{Accuracy: -1}.Options()
	assert.ErrorIs(t, err, solver.ErrBadConfig)

	_, err = solver.Config{MaxIterations: -2}.Options()
	assert.ErrorIs(t, err, solver.ErrBadConfig)

	_, err = solver.Config{MaxDuration: -time.Second}.Options()
	assert.ErrorIs(t, err, solver.ErrBadConfig)
}
