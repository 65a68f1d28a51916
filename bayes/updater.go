// Copyright 2025 The irrealis-bayes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"cmp"
	"fmt"
)

// A Likelihood returns the probability of observing data given a
// hypothesis. It may close over external mutable state, for example a
// remaining-inventory count that models sampling without replacement;
// Update guarantees the function is invoked exactly once per
// hypothesis per call, in ascending hypothesis order.
type Likelihood[D any, H cmp.Ordered] func(data D, hyp H) float64

// An Updater is a PMF with a Bayesian update protocol. The likelihood
// capability is mandatory and has no default: it is injected at
// construction as a function value, a closure, or a method value of a
// problem-specific type.
type Updater[H cmp.Ordered, D any] struct {
	*PMF[H]

	// Likelihood evaluates observed data against a hypothesis.
	// Update fails with ErrNoLikelihood while it is nil.
	Likelihood Likelihood[D, H]
}

// NewUpdater returns an Updater revising the weights of p in place.
func NewUpdater[H cmp.Ordered, D any](p *PMF[H], fn Likelihood[D, H]) *Updater[H, D] {
	return &Updater[H, D]{PMF: p, Likelihood: fn}
}

// Update revises the distribution given observed data: the weight of
// every hypothesis is multiplied by Likelihood(data, hypothesis), and
// the whole PMF is then normalized. Each likelihood is evaluated
// against the prior weights, so no hypothesis's revised weight can
// influence another's likelihood within the same call, and each is
// evaluated exactly once, with no re-evaluation after the next
// hypothesis has been started.
//
// The posterior produced by one Update is the prior consumed by the
// next, realizing iterative updating across a stream of observations.
func (u *Updater[H, D]) Update(data D) error {
	if u.Likelihood == nil {
		return fmt.Errorf("update: %w", ErrNoLikelihood)
	}
	for _, h := range u.Hypotheses() {
		u.w[h] *= u.Likelihood(data, h)
	}
	u.Normalize()
	return nil
}
