// Package card models dividers and their placement on a printed page.
//
// A divider is a rectangle with a tab protruding from one edge. Its
// [Dimensions] always include the tab. A [CardPlot] is one divider instance
// placed on a page: a lower-left position in page space, a clockwise
// [Rotation], the side its tab is drawn on, and four page-relative crop-mark
// flags set by the layout.
//
// # Page space and printed edges
//
// Crop flags describe the page: CropLeft is true when the left page-space
// edge of the item's footprint borders the printable field. Outline drawing
// works in the item's own frame, so a printed edge is mapped back through the
// rotation and the tab side with [PageEdge]. The page-relative flags are never
// rewritten to follow the item.
//
// # Drawing frames
//
// [CardPlot.DrawFrame] returns the translation and counter-clockwise angle
// that put the origin at the item's own lower-left corner. Back faces are
// mirrored about the page width because they are seen through the sheet.
package card
