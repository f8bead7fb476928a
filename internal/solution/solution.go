// Package solution converts a finished (or partial) search node into a
// flat, bin-by-bin placement list, and validates that placement list
// against the instance it was built from. Grounded on
// branching_scheme.cpp's Node::convert (the tree-shaped SolutionNode
// export) and rectangleguillotine/tests/defect_test.cpp (the
// overlap/coverage checks a converted solution must satisfy).
package solution

import "github.com/rectguillotine/solver/internal/instance"

// PlacedItem is one item copy's placement, in the oriented coordinate
// frame of the bin it was cut from (the same frame the branching
// scheme computes in): OX/OY is the lower-left corner along the
// stage-1/stage-2 axes, OW/OH its footprint in that frame. A writer
// that needs physical (un-oriented) coordinates transposes OX/OY/OW/OH
// whenever Orientation is Horizontal — see Bin.Width/Height.
type PlacedItem struct {
	ItemId      instance.ItemTypeId
	Bin         instance.BinPos
	OX, OY      instance.Length
	OW, OH      instance.Length
	Rotated     bool
	Orientation instance.Orientation
}

// Solution is a flat export of every item placement together with the
// aggregate figures the search already tracked incrementally.
type Solution struct {
	Items           []PlacedItem
	BinOrientations []instance.Orientation
	BinsUsed        int
	ItemsPlaced     int
	Profit          instance.Profit
	Waste           instance.Area
	Full            bool
}

// PhysicalRect returns p's placement in the bin's real (un-oriented)
// coordinate system.
func (p PlacedItem) PhysicalRect() instance.Rect {
	if p.Orientation == instance.Vertical {
		return instance.Rect{X: p.OX, Y: p.OY, W: p.OW, H: p.OH}
	}
	return instance.Rect{X: p.OY, Y: p.OX, W: p.OH, H: p.OW}
}
