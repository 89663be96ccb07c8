package utils

import "math"

// Float32ToInt8 converts a normalized sample to signed 8-bit PCM,
// rounding to nearest. Input is clamped to [-1, 1] first.
func Float32ToInt8(x float32) int8 {
	return DitherToInt8(x, 0)
}

// DitherToInt8 quantizes like Float32ToInt8 but adds noise in units of one
// 8-bit step before rounding. For TPDF dither pass noise drawn from a
// triangular distribution in (-1, 1); the added error masks quantization
// distortion at the cost of at most one step of noise floor.
func DitherToInt8(x float32, noise float64) int8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 127 on both sides keeps the scale symmetric.
	v := math.Round(float64(x)*127.0 + noise)
	if v > 127 {
		v = 127
	} else if v < -128 {
		v = -128
	}

	return int8(v)
}
