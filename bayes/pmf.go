// Copyright 2025 The irrealis-bayes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A PMF is a probability mass function over a space of hypotheses: an
// associative container from hypothesis to non-negative weight.
// Weights are relative plausibilities; they are not required to sum
// to one except immediately after Normalize.
//
// A PMF is mutable and not internally synchronized. Concurrent
// mutation requires external mutual exclusion.
type PMF[H cmp.Ordered] struct {
	// Src is the source of randomness used by Sample. If Src is
	// nil, Sample uses the global random source.
	Src rand.Source

	w map[H]float64
}

// New returns an empty PMF.
func New[H cmp.Ordered]() *PMF[H] {
	return &PMF[H]{w: make(map[H]float64)}
}

// FromMap returns a PMF seeded with the entries of m. The map is
// copied; later mutation of m does not affect the PMF.
func FromMap[H cmp.Ordered](m map[H]float64) *PMF[H] {
	p := New[H]()
	for h, w := range m {
		p.w[h] = w
	}
	return p
}

// Copy returns an independent PMF with the same entries and random
// source. Mutating either PMF leaves the other unchanged.
func (p *PMF[H]) Copy() *PMF[H] {
	c := FromMap(p.w)
	c.Src = p.Src
	return c
}

// Len returns the number of hypotheses, including any with zero
// weight.
func (p *PMF[H]) Len() int {
	return len(p.w)
}

// Prob returns the weight of hypothesis h, or 0 if h is not present.
func (p *PMF[H]) Prob(h H) float64 {
	return p.w[h]
}

// Set assigns weight w to hypothesis h, adding it if absent.
func (p *PMF[H]) Set(h H, w float64) {
	p.w[h] = w
}

// Mult multiplies the weight of hypothesis h by factor. It has no
// effect if h is not present.
func (p *PMF[H]) Mult(h H, factor float64) {
	if _, ok := p.w[h]; ok {
		p.w[h] *= factor
	}
}

// Hypotheses returns the hypotheses in ascending order. This is the
// iteration order used by Sample and by Updater.Update.
func (p *PMF[H]) Hypotheses() []H {
	hs := make([]H, 0, len(p.w))
	for h := range p.w {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// Total returns the sum of all weights, 0 for an empty PMF.
func (p *PMF[H]) Total() float64 {
	ws := make([]float64, 0, len(p.w))
	for _, w := range p.w {
		ws = append(ws, w)
	}
	return floats.Sum(ws)
}

// Normalizer returns the factor that scales the weights to sum to
// one: 1/Total, or +Inf when the total weight is zero. The infinite
// normalizer is a sentinel for the degenerate all-zero case, not an
// error.
func (p *PMF[H]) Normalizer() float64 {
	if t := p.Total(); t > 0 {
		return 1 / t
	}
	return inf
}

// Scale multiplies every weight by factor, in place.
func (p *PMF[H]) Scale(factor float64) {
	for h := range p.w {
		p.w[h] *= factor
	}
}

// Normalize scales the weights so they sum to one, making the PMF a
// probability distribution. Normalizing an all-zero PMF multiplies
// each zero weight by +Inf, leaving every weight NaN; that is the
// documented outcome of the indeterminate 0/0 normalization, not an
// error.
func (p *PMF[H]) Normalize() {
	p.Scale(p.Normalizer())
}

// Expectation returns the weighted sum Σ h·w over the current,
// possibly unnormalized, weights. It fails with ErrNonNumeric if the
// hypotheses do not support arithmetic.
func (p *PMF[H]) Expectation() (float64, error) {
	var sum float64
	for h, w := range p.w {
		x, ok := toFloat(h)
		if !ok {
			return 0, fmt.Errorf("expectation of %T hypotheses: %w", h, ErrNonNumeric)
		}
		sum += x * w
	}
	return sum, nil
}

// Mode returns the hypothesis with the greatest weight. Ties resolve
// to the smallest such hypothesis. It fails with ErrEmpty if the PMF
// has no entries.
func (p *PMF[H]) Mode() (H, error) {
	var best H
	if len(p.w) == 0 {
		return best, fmt.Errorf("mode: %w", ErrEmpty)
	}
	bw := math.Inf(-1)
	for _, h := range p.Hypotheses() {
		if w := p.w[h]; w > bw {
			best, bw = h, w
		}
	}
	return best, nil
}

// Sample draws one hypothesis at random with probability proportional
// to its weight relative to Total. The weights need not be
// normalized; entries with zero weight are never drawn. Sampling
// fails with ErrEmpty when the total weight is not positive.
func (p *PMF[H]) Sample() (H, error) {
	var zero H
	total := p.Total()
	if !(total > 0) {
		return zero, fmt.Errorf("sample: %w", ErrEmpty)
	}
	t := distuv.Uniform{Min: 0, Max: total, Src: p.Src}.Rand()
	hs := p.Hypotheses()
	var sum float64
	for _, h := range hs {
		sum += p.w[h]
		if sum >= t {
			return h, nil
		}
	}
	// Rounding in the running sum can leave it just below total.
	return hs[len(hs)-1], nil
}

// SetUniform replaces the contents with weight 1 for each of events
// and normalizes, yielding a uniform distribution over events.
func (p *PMF[H]) SetUniform(events []H) {
	clear(p.w)
	for _, e := range events {
		p.w[e] = 1
	}
	p.Normalize()
}

// SetPowerLaw replaces the contents with weight e^(-alpha) for each
// of events and normalizes. Events must be numeric and positive; it
// fails with ErrNonNumeric otherwise, leaving the PMF unchanged.
func (p *PMF[H]) SetPowerLaw(events []H, alpha float64) error {
	ws := make(map[H]float64, len(events))
	for _, e := range events {
		x, ok := toFloat(e)
		if !ok {
			return fmt.Errorf("power-law prior over %T events: %w", e, ErrNonNumeric)
		}
		ws[e] = math.Pow(x, -alpha)
	}
	clear(p.w)
	for e, w := range ws {
		p.w[e] = w
	}
	p.Normalize()
	return nil
}
