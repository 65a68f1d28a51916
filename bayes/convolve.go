// Copyright 2025 The irrealis-bayes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import "golang.org/x/exp/constraints"

// Convolve returns the distribution of the sum of two independent
// random quantities distributed as p and q. Entries with zero weight
// contribute nothing; every pair (a, b) with positive weight in each
// accumulates weight p(a)·q(b) onto the composite event a+b. The
// result is unnormalized, with total weight p.Total()·q.Total().
func Convolve[H constraints.Integer | constraints.Float](p, q *PMF[H]) *PMF[H] {
	out := New[H]()
	for _, a := range p.Hypotheses() {
		wa := p.w[a]
		if wa <= 0 {
			continue
		}
		for _, b := range q.Hypotheses() {
			wb := q.w[b]
			if wb <= 0 {
				continue
			}
			out.w[a+b] += wa * wb
		}
	}
	return out
}
