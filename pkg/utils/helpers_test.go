package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundInt(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{18.6, 19},
		{18.4, 18},
		{18.5, 19},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundInt(tt.in), "RoundInt(%v)", tt.in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Jacket", "jacket"))
	assert.True(t, ContainsFold("Denim JACKET", "Jack"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Shirt", "jacket"))
}

func TestRandRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandRange(r, 5, 35)
		assert.GreaterOrEqual(t, v, 5)
		assert.Less(t, v, 35)
	}
	assert.Equal(t, 7, RandRange(r, 7, 7))
}

func TestPick(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	options := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, options, Pick(r, options))
	}
}
