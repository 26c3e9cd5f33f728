package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// EasingByName resolves a config easing name to its function. Unknown
// names fall back to InOutQuad.
func EasingByName(name string) func(float64) float64 {
	switch name {
	case "linear":
		return ease.Linear
	case "inQuad":
		return ease.InQuad
	case "outQuad":
		return ease.OutQuad
	case "inOutQuad":
		return ease.InOutQuad
	case "inCubic":
		return ease.InCubic
	case "outCubic":
		return ease.OutCubic
	case "inOutCubic":
		return ease.InOutCubic
	case "inSine":
		return ease.InSine
	case "outSine":
		return ease.OutSine
	case "inOutSine":
		return ease.InOutSine
	case "outElastic":
		return ease.OutElastic
	case "outBounce":
		return ease.OutBounce
	default:
		return ease.InOutQuad
	}
}

func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric rise-and-fall look-up table from an
// easing function.
func GenerateLut(length int, easing func(float64) float64) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = easing(value)
		lut[j] = easing(value)
	}
	return lut
}
