// SPDX-License-Identifier: MIT

package budget

import "errors"

// ErrInvalidBudget rejects a limit outside [0, MaxLimit] or a variability
// outside [MinVariability, MaxVariability].
var ErrInvalidBudget = errors.New("budget: invalid configuration")
