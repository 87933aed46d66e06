// Package widgets provides the reusable view components of Crystal UI.
//
// Widgets are lightweight value objects with a two-phase contract: Layout
// resolves a size within the parent's constraints, then Paint draws into a
// canvas at the bounds the parent chose. Containers call Layout on their
// children before their own Layout returns, so a single Layout/Paint pass
// over the root covers the whole tree.
//
// The package contains layout containers (Flow, AdaptiveStack), decorated
// containers (TitledBorder), leaves (Box, Label), and wrappers that modify
// a single child (Padding, SizedBox, SizeReader, RoundCorners). The If
// helper applies a wrapper conditionally:
//
//	w := If(selected, child, func(w Widget) Widget {
//	    return &RoundCorners{Child: w, Radius: 8, Corners: shape.AllCorners()}
//	})
//
// All widgets are recomputed from their inputs every pass; nothing is
// cached between frames beyond the offsets a container records during its
// own Layout.
package widgets
