// Package layout is the scorecard layout engine.
//
// # Overview
//
// [Plan] turns a [models.Competition] into a [Document]: an ordered list of
// A4 pages, each holding up to four [CardDescriptor]s arranged in a 2×2 grid
// for 4-way cutting. Events are visited in catalog order and their rounds in
// order. Every round starts on a fresh page, so a sheet never mixes cards
// from two rounds and a stack of cut cards sorts itself by round.
//
// [CardShapes] computes the drawing program for one card: boxes for the
// result rows, the extra attempt row, the optional dashed cutoff separator
// and the cutoff/limit captions. [GuideShapes] gives the faint cutting
// guides drawn once per page.
//
// # Coordinates
//
// All geometry is in PDF points (1/72 inch) with the origin at the
// bottom-left corner of the page and y growing upwards. Sinks that use a
// top-left origin flip y themselves; see the render package.
//
// Nothing in this package performs I/O or depends on a drawing library.
package layout
