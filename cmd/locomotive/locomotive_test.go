package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadSerials(t *testing.T) {
	obs, err := readSerials(strings.NewReader("60\n30\n90\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{60, 30, 90}, obs)

	obs, err = readSerials(strings.NewReader("ignored"), []string{"60", "30"})
	require.NoError(t, err)
	assert.Equal(t, []int{60, 30}, obs)

	_, err = readSerials(strings.NewReader("sixty\n"), nil)
	assert.Error(t, err)
}

func TestEstimate(t *testing.T) {
	// Uniform prior over 1..1000, one observation of serial 60.
	post, err := estimate([]int{60}, 1000, 0, zap.NewNop())
	require.NoError(t, err)

	mean, err := post.Expectation()
	require.NoError(t, err)
	assert.InDelta(t, 333.42, mean, 0.01)

	assert.Equal(t, 0.0, post.Prob(59), "sizes below the observation are ruled out")

	mode, err := post.Mode()
	require.NoError(t, err)
	assert.Equal(t, 60, mode)
}
