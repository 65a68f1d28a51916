// Copyright 2025 The irrealis-bayes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A CDF is a cumulative distribution built from a snapshot of a PMF's
// (event, weight) pairs: an ordered sequence of events and a parallel
// non-decreasing sequence of cumulative weight sums, supporting
// percentile and credible-interval queries.
//
// A CDF is immutable once constructed and safe to share across
// concurrent readers. Later mutation of the source PMF has no effect
// on an already-built CDF.
type CDF[H cmp.Ordered] struct {
	xs   []H
	sums []float64
}

// NewCDF builds the CDF of p with events in ascending natural order.
// It fails with ErrEmpty if p has no entries.
func NewCDF[H cmp.Ordered](p *PMF[H]) (*CDF[H], error) {
	return NewCDFFunc(p, cmp.Compare[H])
}

// NewCDFFunc is like NewCDF but orders events by compare, which
// reports -1, 0, or +1 as cmp.Compare does. The sort is stable.
func NewCDFFunc[H cmp.Ordered](p *PMF[H], compare func(a, b H) int) (*CDF[H], error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("cdf of empty distribution: %w", ErrEmpty)
	}
	xs := make([]H, 0, p.Len())
	for h := range p.w {
		xs = append(xs, h)
	}
	slices.SortStableFunc(xs, compare)
	ws := make([]float64, len(xs))
	for i, h := range xs {
		ws[i] = p.w[h]
	}
	sums := make([]float64, len(ws))
	floats.CumSum(sums, ws)
	return &CDF[H]{xs: xs, sums: sums}, nil
}

// Len returns the number of events in the snapshot.
func (c *CDF[H]) Len() int {
	return len(c.xs)
}

// Total returns the total weight captured by the snapshot.
func (c *CDF[H]) Total() float64 {
	return c.sums[len(c.sums)-1]
}

// FloorIndex returns the index of the event bounding cumulative
// weight p: the smallest index whose cumulative sum exceeds p, except
// that p landing exactly on a cumulative boundary resolves to the
// lower, already-accumulated index rather than the next event. It
// fails with ErrOutOfRange for p outside [0, Total].
func (c *CDF[H]) FloorIndex(p float64) (int, error) {
	if math.IsNaN(p) || p < 0 || p > c.Total() {
		return 0, fmt.Errorf("probability %v outside [0, %v]: %w", p, c.Total(), ErrOutOfRange)
	}
	idx := sort.Search(len(c.sums), func(i int) bool { return c.sums[i] > p })
	if idx > 0 && c.sums[idx-1] == p {
		return idx - 1, nil
	}
	return idx, nil
}

// Percentile returns the event at FloorIndex(p).
func (c *CDF[H]) Percentile(p float64) (H, error) {
	i, err := c.FloorIndex(p)
	if err != nil {
		var zero H
		return zero, err
	}
	return c.xs[i], nil
}

// Percentiles returns the event for each probability, in the same
// order as requested.
func (c *CDF[H]) Percentiles(ps ...float64) ([]H, error) {
	out := make([]H, len(ps))
	for i, p := range ps {
		x, err := c.Percentile(p)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// CredibleInterval returns the bounds of the central interval
// containing fraction frac of the total weight. For a normalized
// distribution, CredibleInterval(0.9) queries the 5th and 95th
// percentiles.
func (c *CDF[H]) CredibleInterval(frac float64) (lo, hi H, err error) {
	if math.IsNaN(frac) || frac < 0 || frac > 1 {
		return lo, hi, fmt.Errorf("credible fraction %v outside [0, 1]: %w", frac, ErrOutOfRange)
	}
	tail := (1 - frac) / 2 * c.Total()
	xs, err := c.Percentiles(tail, c.Total()-tail)
	if err != nil {
		return lo, hi, err
	}
	return xs[0], xs[1], nil
}
