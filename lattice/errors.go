// SPDX-License-Identifier: MIT

package lattice

import "errors"

// ErrInvalidInstance indicates a malformed instance: size below 1, grid
// dimensions inconsistent with the size, or a value outside {+1,−1}.
var ErrInvalidInstance = errors.New("lattice: invalid instance")
