// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "errors"

// ErrNotFound is returned by query operations when a pattern does not occur
// in the text.
var ErrNotFound = errors.New("suffixarr: pattern not found")

// ErrOutOfRange is returned when a caller supplies a rank or text position
// outside the bounds of the suffix array.
var ErrOutOfRange = errors.New("suffixarr: index out of range")
