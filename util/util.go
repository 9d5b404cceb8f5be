package util

import (
	"math"

	"github.com/fogleman/ease"
	"golang.org/x/exp/constraints"
)

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapHue maps any hue in degrees onto [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// GenerateLut builds a symmetric rise-and-fall table of gains in [0, 1)
// shaped by an ease-in-out curve.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return []float64{0}
	}
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
