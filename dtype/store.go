// SPDX-License-Identifier: MIT

package dtype

import "math"

const (
	two63 = 9223372036854775808.0  // 2^63
	two64 = 18446744073709551616.0 // 2^64
)

// wrapBits truncates v toward zero and reduces it modulo 2^64.
// NaN and ±Inf map to 0. Narrowing the result to an N-bit integer type
// then yields v modulo 2^N, which is the integer store rule for every
// width since 2^N divides 2^64.
func wrapBits(v float64) uint64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	t := math.Mod(math.Trunc(v), two64) // integer in (-2^64, 2^64)
	switch {
	case t >= two63:
		return uint64(t)
	case t >= -two63:
		return uint64(int64(t)) // two's complement wrap for negatives
	default:
		return uint64(t + two64) // exact: |t| >= 2^63 has no low bits
	}
}

func storeInt8(v float64) int8     { return int8(wrapBits(v)) }
func storeUint8(v float64) uint8   { return uint8(wrapBits(v)) }
func storeInt16(v float64) int16   { return int16(wrapBits(v)) }
func storeUint16(v float64) uint16 { return uint16(wrapBits(v)) }
func storeInt32(v float64) int32   { return int32(wrapBits(v)) }
func storeUint32(v float64) uint32 { return uint32(wrapBits(v)) }
func storeInt64(v float64) int64   { return int64(wrapBits(v)) }
func storeUint64(v float64) uint64 { return wrapBits(v) }

// storeUint8Clamped saturates into [0,255] and rounds half to even.
func storeUint8Clamped(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.RoundToEven(v))
	}
}

func storeFloat32(v float64) float32 { return float32(v) }
func storeFloat64(v float64) float64 { return v }
