// Package rng_test validates the determinism contract of the rng helpers.
package rng_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadwork/rng"
)

func TestNew_ZeroSeedPolicy(t *testing.T) {
	a := rng.New(0)
	b := rng.New(rng.DefaultSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDerive_StreamsAreIndependent(t *testing.T) {
	a := rng.Derive(7, rng.StreamReserve)
	b := rng.Derive(7, rng.StreamSearch)
	a2 := rng.Derive(7, rng.StreamReserve)

	va, vb, va2 := a.Int63(), b.Int63(), a2.Int63()
	assert.NotEqual(t, va, vb)
	assert.Equal(t, va, va2)

	assert.NotEqual(t, rng.DeriveSeed(1, 1), rng.DeriveSeed(1, 2))
	assert.NotEqual(t, rng.DeriveSeed(1, 1), rng.DeriveSeed(2, 1))
}

func TestPerm_IsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 100} {
		p := rng.Perm(n, rng.New(3))
		require.Len(t, p, n)
		s := slices.Clone(p)
		slices.Sort(s)
		for i, v := range s {
			require.Equal(t, i, v)
		}
	}
	assert.Empty(t, rng.Perm(-4, nil))
}

func TestShuffle_Deterministic(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e", "f"}
	b := slices.Clone(a)
	rng.Shuffle(a, rng.New(11))
	rng.Shuffle(b, rng.New(11))
	assert.Equal(t, a, b)

	one := []int{5}
	rng.Shuffle(one, nil)
	assert.Equal(t, []int{5}, one)
}

func TestChanceAndPick(t *testing.T) {
	r := rng.New(5)
	assert.False(t, rng.Chance(r, 0))
	assert.True(t, rng.Chance(r, 1))

	hits := 0
	for i := 0; i < 10_000; i++ {
		if rng.Chance(r, 0.25) {
			hits++
		}
	}
	assert.InDelta(t, 2500, hits, 300)

	xs := []int{4, 8, 15}
	assert.Contains(t, xs, rng.Pick(xs, r))
}
