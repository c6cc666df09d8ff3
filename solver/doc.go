// SPDX-License-Identifier: MIT

// Package solver finds roots and minima of scalar functions.
//
//   - Bisection narrows a sign-changing bracket [a, b] until its width is at
//     most 2·accuracy and returns the final midpoint.
//   - Newton iterates x − f(x)/f'(x) until the step is at most accuracy.
//     Without a derivative it uses the central difference with h = accuracy.
//   - GoldenSection shrinks a bracket around a minimum of a unimodal
//     function using golden-ratio interior points.
//
// All three share one budget: an accuracy target, an iteration cap and an
// optional wall-clock ceiling. The clock is read once at the start and then
// between iterations only, so the last iteration may overrun the ceiling.
// Tests inject a Clock with WithClock.
//
// Each call returns a Result saying which limit stopped it. Hitting the
// iteration cap or the time budget is not an error; Reason tells them apart.
//
// Options come from functional WithX values or from a loosely typed map via
// DecodeConfig.
package solver
