// SPDX-License-Identifier: MIT

package keypath

import "errors"

// ErrEmptyPath is returned when a key path is the empty string.
var ErrEmptyPath = errors.New("keypath: empty path")
