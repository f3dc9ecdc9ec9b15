package utils

import (
	"math"
	"math/rand/v2"
	"time"
)

// RandomSource yields floats uniformly distributed in [0, 1). *rand.Rand
// satisfies it; tests plug in fixed sequences.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. A zero seed picks one from the
// clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GetRandomPositiveNumber returns a float in [min, max).
func GetRandomPositiveNumber(r RandomSource, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// GetRandomNegativeNumber returns a float in (-max, -min].
func GetRandomNegativeNumber(r RandomSource, min, max float64) float64 {
	return -GetRandomPositiveNumber(r, min, max)
}

// GetRandomNumber returns a float in [min, max); min may be negative.
func GetRandomNumber(r RandomSource, min, max float64) float64 {
	return GetRandomPositiveNumber(r, min, max)
}

// GetRandomPositiveInteger returns an integer in [min, max].
func GetRandomPositiveInteger(r RandomSource, min, max int) int {
	return int(math.Floor(r.Float64()*float64(max-min+1))) + min
}
