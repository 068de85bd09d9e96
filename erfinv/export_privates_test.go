// SPDX-License-Identifier: MIT

package erfinv

// White-box bridges for erfinv_test. Compiled only with the test binary.
var (
	// GatherOptions exposes option resolution.
	GatherOptions = gatherOptions

	// Horner exposes the polynomial evaluator used by the kernel.
	Horner = horner
)
