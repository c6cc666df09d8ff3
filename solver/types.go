// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lvmath/numeric"
)

// Sentinel errors for precondition failures.
var (
	// ErrSameSign is returned by Bisection when f(a) and f(b) share a sign.
	ErrSameSign = errors.New("solver: f(a) and f(b) have the same sign")

	// ErrBadInterval is returned when a bracket has a > b, or a NaN endpoint.
	ErrBadInterval = errors.New("solver: invalid interval")

	// ErrZeroDerivative is returned by Newton when the derivative vanishes.
	ErrZeroDerivative = errors.New("solver: derivative is zero")

	// ErrNilFunction is returned when f is nil.
	ErrNilFunction = errors.New("solver: nil function")
)

// Reason tells which condition ended a run.
type Reason uint8

const (
	// Converged means the accuracy target was met (or an exact root hit).
	Converged Reason = iota
	// IterationLimit means MaxIterations ran out first.
	IterationLimit
	// TimeLimit means MaxDuration elapsed first.
	TimeLimit
)

func (r Reason) String() string {
	switch r {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit"
	case TimeLimit:
		return "time limit"
	default:
		return "unknown"
	}
}

// Result is the outcome of a solver run.
type Result[T numeric.Float] struct {
	X          T
	Iterations int
	Elapsed    time.Duration
	Reason     Reason
}

// budget tracks the iteration and time limits of one run.
type budget struct {
	opts  Options
	start time.Time
	iter  int
}

func newBudget(o Options) *budget {
	return &budget{opts: o, start: o.Clock.Now()}
}

// next reports whether another iteration may run, and if not, why.
func (b *budget) next() (bool, Reason) {
	if b.iter >= b.opts.MaxIterations {
		return false, IterationLimit
	}
	if b.opts.MaxDuration > 0 && b.opts.Clock.Now().Sub(b.start) >= b.opts.MaxDuration {
		return false, TimeLimit
	}
	b.iter++

	return true, Converged
}

// finish builds the Result and logs the termination reason.
func finish[T numeric.Float](method string, b *budget, x T, r Reason) Result[T] {
	res := Result[T]{X: x, Iterations: b.iter, Elapsed: b.opts.Clock.Now().Sub(b.start), Reason: r}
	if log.V(1) {
		log.Infof("solver: %s stopped (%v) at x=%v after %d iterations in %v", method, r, x, res.Iterations, res.Elapsed)
	}

	return res
}
