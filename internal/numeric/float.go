package numeric

import "math"

// ibmMantissaBits is the width of the fraction field in an IBM
// System/360 single-precision float: sign bit, 7-bit excess-64
// exponent (base 16), 24-bit fraction.
const ibmMantissaBits = 24

// ieeeMantissaBits is the width of the explicit fraction field in an
// IEEE 754 binary32 float, excluding the implicit leading 1.
const ieeeMantissaBits = 23

// NearestSmallerIBM returns the largest value representable in IBM
// System/360 single-precision floating format that is <= x.
//
// The result is idempotent, monotone non-decreasing in x, sign-
// preserving, and satisfies f(x) <= x; for x exactly representable in
// the format, f(x) == x.
func NearestSmallerIBM(x float64) float64 {
	if x == 0 {
		return 0
	}

	sign := 1.0
	ax := x
	if x < 0 {
		sign = -1.0
		ax = -x
	}

	exp, frac := normalize(ax, 16, 1.0/16.0, 1.0)

	scale := float64(uint64(1) << ibmMantissaBits)
	mantissaMax := uint64(1) << ibmMantissaBits

	var mantissa uint64
	if sign > 0 {
		mantissa = uint64(math.Floor(frac * scale))
	} else {
		mantissa = uint64(math.Ceil(frac * scale))
		if mantissa == mantissaMax {
			// frac rounded up to 1.0 exactly: renormalize by one base-16 digit.
			mantissa >>= 4
			exp++
		}
	}

	return sign * (float64(mantissa) / scale) * PowInt(16, exp)
}

// NearestSmallerIEEE returns the largest value representable in IEEE
// 754 binary32 that is <= x.
//
// Guarantees mirror NearestSmallerIBM: idempotent, monotone non-
// decreasing, sign-preserving, f(x) <= x, exact on representable input.
func NearestSmallerIEEE(x float64) float64 {
	if x == 0 {
		return 0
	}

	sign := 1.0
	ax := x
	if x < 0 {
		sign = -1.0
		ax = -x
	}

	exp, frac := normalize(ax, 2, 1.0, 2.0)
	// frac is in [1, 2); the stored fraction is frac - 1, in [0, 1).
	frac -= 1.0

	scale := float64(uint64(1) << ieeeMantissaBits)
	mantissaMax := uint64(1) << ieeeMantissaBits

	var mantissa uint64
	if sign > 0 {
		mantissa = uint64(math.Floor(frac * scale))
	} else {
		mantissa = uint64(math.Ceil(frac * scale))
		if mantissa == mantissaMax {
			mantissa = 0
			exp++
		}
	}

	return sign * (1.0 + float64(mantissa)/scale) * PowInt(2, exp)
}

// normalize finds the integer exponent and fractional part such that
// ax == frac * base^exp, with frac constrained to [lower, upper) —
// [1/16, 1) for IBM's leading-hex-digit-non-zero convention, or [1, 2)
// for IEEE's implicit-leading-1 convention.
func normalize(ax, base, lower, upper float64) (exp int, frac float64) {
	frac = ax
	for frac >= upper {
		frac /= base
		exp++
	}
	for frac < lower {
		frac *= base
		exp--
	}
	return exp, frac
}
