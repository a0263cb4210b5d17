package utils

import (
	"math"
	"strings"
)

// IntSource is the subset of *rand.Rand the helpers need
type IntSource interface {
	Intn(n int) int
}

// RoundInt rounds to the nearest integer, halves toward positive infinity
func RoundInt(value float64) int {
	return int(math.Floor(value + 0.5))
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// RandRange returns a uniform integer in [min, max)
func RandRange(src IntSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min)
}

// Pick returns a uniformly chosen element of options
func Pick[T any](src IntSource, options []T) T {
	return options[src.Intn(len(options))]
}
