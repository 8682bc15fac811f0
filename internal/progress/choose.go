// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import "math/rand/v2"

// Chooser picks one index in [0, n) for n > 0.
type Chooser interface {
	Choose(n int) int
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(n int) int

// Choose calls f(n).
func (f ChooserFunc) Choose(n int) int { return f(n) }

// RandomChooser picks uniformly using the process-wide generator.
var RandomChooser Chooser = ChooserFunc(rand.IntN)
