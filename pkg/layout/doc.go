// Package layout decides how many dividers fit on a page and where they go.
//
// A [PageLayout] is computed for one divider size on one page shape. It
// holds a regular grid (the field), an optional strip of extra items rotated
// a quarter turn and packed into leftover margin space, and optionally an
// interleaved field in which every second item is turned 180° so that its
// tab nests into the notch beside its neighbour's tab.
//
//	Vertical field                        Horizontal field
//	+-------------------------------+     +-------------------------------+
//	| .-----.  extra   .-----.      |     | .-----.-----.   .-----.       |
//	| |     | .  .  .  |     |      |     | |     |     | . |     | .---. |
//	| .-----.  strip   .-----.      |     | .-----.-----.   .-----. |   | |
//	| .---.---.               .---. |     |                         | e | |
//	| |   |   |               |   | |     |        regular          | x | |
//	| |   |   |  .  .  .  .  .|   | |     |        field            | t | |
//	| .---.---.               .---. |     |                         | r | |
//	|          regular field        |     | .-----.-----.   .-----. | a | |
//	| .---.---.               .---. |     | |     |     | . |     | .---. |
//	+-------------------------------+     +-------------------------------+
//
// All quantities come from an immutable [Config]; nothing is shared between
// layouts. [Choose] evaluates the natural and rotated orientations (and the
// interleaved variant of each) and keeps the one with the largest capacity.
//
// # Interleaving
//
// Two items of length L whose tabs protrude T nest into a pair of pitch
// 2L−T. Along the nesting axis a field holds 2·doubles + singles items, where
// doubles = ⌊usable / (2L−T)⌋ and singles = ⌊remainder / L⌋. Nesting is only
// possible when the tab takes at most half of its edge.
//
// Both members of a pair print their tab on the same side, so turning one
// of them puts the tabs at opposite ends of the shared edge. A side tab on
// the right points the other way along the nesting axis, which changes
// which member of the pair turns.
//
// # Errors
//
// A layout that holds nothing is reported as INFEASIBLE_LAYOUT; it is never
// silently turned into empty pages.
package layout
