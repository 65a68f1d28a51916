// Copyright 2025 The irrealis-bayes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d6() *PMF[int] {
	die := New[int]()
	die.SetUniform([]int{1, 2, 3, 4, 5, 6})
	return die
}

func TestConvolveDice(t *testing.T) {
	sum := Convolve(d6(), d6())
	sum.Normalize()

	assert.Equal(t, 11, sum.Len())
	assert.True(t, aeq(1.0/36, sum.Prob(2)))
	assert.True(t, aeq(6.0/36, sum.Prob(7)))
	assert.True(t, aeq(1.0/36, sum.Prob(12)))
	assert.Equal(t, 0.0, sum.Prob(1))

	mean, err := sum.Expectation()
	require.NoError(t, err)
	assert.True(t, aeq(7, mean))
}

func TestConvolveTotalsMultiply(t *testing.T) {
	p := FromMap(map[int]float64{0: 2, 1: 2})
	q := FromMap(map[int]float64{0: 3, 1: 3})
	sum := Convolve(p, q)
	assert.True(t, aeq(p.Total()*q.Total(), sum.Total()))
}

func TestConvolveSkipsZeroWeights(t *testing.T) {
	p := FromMap(map[int]float64{1: 1, 100: 0})
	q := FromMap(map[int]float64{1: 1, 200: 0})
	sum := Convolve(p, q)

	assert.Equal(t, 1, sum.Len())
	assert.Equal(t, 1.0, sum.Prob(2))
	assert.Equal(t, 0.0, sum.Prob(101))
	assert.Equal(t, 0.0, sum.Prob(300))
}
