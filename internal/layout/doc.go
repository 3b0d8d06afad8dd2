// Package layout implements the space-allocation core for terminal UIs: it
// partitions a rectangular cell region along one axis into segment and spacer
// rectangles according to sizing constraints and a justification policy.
//
// Constraints are a closed set (fixed, percentage, ratio, at-least, at-most,
// share); each derives a [Range] of min/preferred/max hints with a growth
// weight and priority tier. A four-phase grower turns the ranges into final
// lengths that account for the whole axis, with starvation and forced
// overgrowth as legal outcomes rather than errors. Results are memoized by
// structural fingerprint so repeated splits of an unchanged layout are
// bit-identical and cheap.
//
// Types are re-exported through the root carve package for public
// consumption. The main entry point is [Split].
package layout
