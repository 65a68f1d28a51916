// Copyright 2025 The irrealis-bayes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bayes models discrete probability distributions over arbitrary
// hypothesis spaces and performs sequential Bayesian belief updates
// on them.
package bayes // import "github.com/kaben/irrealis-bayes/bayes"

import (
	"errors"
	"math"
	"reflect"
)

var inf = math.Inf(1)

// Error kinds reported by this package. All failures are synchronous
// and deterministic; callers match them with errors.Is.
var (
	// ErrNoLikelihood is returned by Updater.Update when no
	// likelihood function was supplied.
	ErrNoLikelihood = errors.New("no likelihood function")

	// ErrNonNumeric is returned by operations that require
	// numeric hypotheses, such as PMF.Expectation, when the
	// hypotheses are not numeric.
	ErrNonNumeric = errors.New("non-numeric hypotheses")

	// ErrEmpty is returned when an operation needs at least one
	// entry with positive weight and the distribution has none.
	ErrEmpty = errors.New("empty distribution")

	// ErrOutOfRange is returned by cumulative queries for
	// probabilities outside [0, total weight].
	ErrOutOfRange = errors.New("probability out of range")
)

// toFloat converts a hypothesis of any numeric kind to float64. The
// second result reports whether the conversion was possible.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
