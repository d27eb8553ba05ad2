// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Constructors never panic; option constructors may (programmer error).
//
// Validation order when several checks fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is outside the allowed domain of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts, or was
// handed a nil graph or constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates an unrecognised topology name in ParseKind.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
