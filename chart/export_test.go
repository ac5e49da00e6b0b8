// SPDX-License-Identifier: MIT

package chart

import "gonum.org/v1/plot/plotter"

// Curves_TestOnly returns the function curves of an activation chart in
// drawing order.
func Curves_TestOnly(c *Chart) []*plotter.Function { return c.curves }
