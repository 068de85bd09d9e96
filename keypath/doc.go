// SPDX-License-Identifier: MIT

// Package keypath reads and writes a scalar field deep inside nested Go
// values by a separator-delimited key path.
//
// A path such as "x.1.value" is split on the separator (default ".") into
// keys. Each key addresses, at its level:
//   - a map entry (maps with string-kinded keys);
//   - a slice or array element (decimal index);
//   - an exported struct field (by name).
//
// Pointers and interfaces are followed transparently. The setter never
// creates intermediate containers: a missing level makes Set report false.
// Struct fields and array elements are only writable when reached through a
// pointer or a slice element; map entries and slice elements always are.
package keypath
