package solution

import (
	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solver"
)

// Convert walks node's ancestor chain back to the root and emits one
// PlacedItem per item copy placed along the way, in the oriented frame
// of the bin it belongs to. Root-ward corresponds to
// branching_scheme.cpp's "descendents" walk in Node::convert; this
// version skips that function's internal SolutionNode tree (cut
// positions are recoverable from OX/OY/OW/OH directly) and emits the
// flatter shape a CSV/JSON writer and a checker both want.
func Convert(scheme *solver.BranchingScheme, node *solver.Node) *Solution {
	sol := &Solution{
		BinsUsed:    int(node.BinNumber()),
		ItemsPlaced: int(node.ItemNumber()),
		Profit:      node.Profit(),
		Waste:       node.Waste(),
		Full:        node.Full(),
	}
	if sol.BinsUsed > 0 {
		sol.BinOrientations = make([]instance.Orientation, sol.BinsUsed)
	}

	var items []PlacedItem
	for cur := node; cur.Father() != nil; cur = cur.Father() {
		father := cur.Father()
		ins := cur.Insertion()
		o := cur.FirstStageOrientation()
		binIdx := cur.BinNumber() - 1
		sol.BinOrientations[binIdx] = o

		x3Prev := father.X3PrevAt(ins.Df)
		y2Prev := father.Y2PrevAt(ins.Df)
		ow := ins.X3 - x3Prev

		var oh1 instance.Length
		if ins.J1 != solver.NoItem {
			it1 := scheme.Instance.Item(ins.J1)
			h1, rot1 := orientedHeight(it1, o, ow)
			oh1 = h1
			items = append(items, PlacedItem{
				ItemId: ins.J1, Bin: binIdx,
				OX: x3Prev, OY: y2Prev, OW: ow, OH: h1,
				Rotated: rot1, Orientation: o,
			})
		}
		if ins.J2 != solver.NoItem {
			it2 := scheme.Instance.Item(ins.J2)
			h2, rot2 := orientedHeight(it2, o, ow)
			var oy2 instance.Length
			if ins.J1 != solver.NoItem {
				oy2 = y2Prev + oh1
			} else {
				oy2 = ins.Y2 - h2
			}
			items = append(items, PlacedItem{
				ItemId: ins.J2, Bin: binIdx,
				OX: x3Prev, OY: oy2, OW: ow, OH: h2,
				Rotated: rot2, Orientation: o,
			})
		}
	}

	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	sol.Items = items
	return sol
}

// orientedHeight recovers an item's rotation and oriented height from
// its oriented footprint width ow: exactly one of the item's two
// orientations produces that width, mirroring how the search itself
// never stores "rotated" on an Insertion and instead re-derives it from
// geometry wherever it's needed (see newChildNode's aboveDefect
// bookkeeping and update's defect re-validation).
func orientedHeight(it instance.Item, o instance.Orientation, ow instance.Length) (instance.Length, bool) {
	rotated := instance.Width(it, true, o) == ow
	return instance.Height(it, rotated, o), rotated
}
