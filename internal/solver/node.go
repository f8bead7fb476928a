package solver

import "github.com/rectguillotine/solver/internal/instance"

// Node is an immutable partial solution: what has been placed so far,
// the geometric front of the current bin, and the incremental
// aggregates (item count/area, waste, profit) needed to bound and order
// the search without rescanning the whole placement history.
//
// Nodes are built once by newRootNode/newChildNode and never mutated
// afterwards. A node's father pointer is an ordinary Go pointer: the
// garbage collector keeps a father alive for as long as any live child
// (or the incumbent) references it, which is exactly the shared,
// reference-counted ownership spec.md asks for — Go's GC is this
// repo's analogue of the teacher's shared_ptr<const Node> chains.
type Node struct {
	scheme    *BranchingScheme
	father    *Node
	insertion Insertion

	// posStack[s] == k iff items 0..k-1 of stack s have been placed.
	posStack []instance.ItemPos

	binNumber             instance.BinPos
	firstStageOrientation instance.Orientation

	itemNumber      instance.ItemPos
	itemArea        instance.Area
	squaredItemArea instance.Area
	currentArea     instance.Area
	waste           instance.Area
	profit          instance.Profit

	x1Prev, y2Prev instance.Length

	// aboveDefect holds items placed above a defect in the current
	// stage-2 subplate; cleared whenever the subplate changes (df != 2).
	aboveDefect []jrx
}

func newRootNode(s *BranchingScheme) *Node {
	return &Node{
		scheme: s,
		insertion: Insertion{
			J1: NoItem, J2: NoItem, Df: DepthNewBinVertical,
			X1: 0, Y2: 0, X3: 0, X1Max: -1, Y2Max: -1,
		},
		posStack: make([]instance.ItemPos, s.Instance.StackNumber()),
	}
}

// newChildNode builds the child obtained by applying ins to father.
// Grounded on branching_scheme.cpp's Node(father, insertion) constructor.
func newChildNode(father *Node, ins Insertion) *Node {
	n := &Node{
		scheme:                father.scheme,
		father:                father,
		posStack:              append([]instance.ItemPos(nil), father.posStack...),
		binNumber:             father.binNumber,
		firstStageOrientation: father.firstStageOrientation,
		itemNumber:            father.itemNumber,
		itemArea:              father.itemArea,
		squaredItemArea:       father.squaredItemArea,
		profit:                father.profit,
		x1Prev:                father.x1Prev,
		y2Prev:                father.y2Prev,
	}

	if ins.Df < 0 {
		n.binNumber++
		n.firstStageOrientation = father.LastBinOrientation(ins.Df)
	}

	i := n.binNumber - 1
	o := n.firstStageOrientation
	bin := n.scheme.Instance.Bin(i)
	h := bin.Height(o)
	w := bin.Width(o)

	wJ := ins.X3 - father.X3PrevAt(ins.Df)
	rotateJ2 := false
	if ins.J2 != NoItem {
		it2 := n.scheme.Instance.Item(ins.J2)
		rotateJ2 = instance.Width(it2, true, o) == wJ
	}

	if ins.Df != DepthSameSubplate {
		n.aboveDefect = nil
	} else {
		n.aboveDefect = append([]jrx(nil), father.aboveDefect...)
	}
	if ins.J1 == NoItem && ins.J2 != NoItem {
		n.aboveDefect = append(n.aboveDefect, jrx{J: ins.J2, Rotated: rotateJ2, X: father.X3PrevAt(ins.Df)})
	}

	switch ins.Df {
	case DepthNewBinVertical, DepthNewBinHorizontal:
		n.x1Prev, n.y2Prev = 0, 0
	case DepthNewStrip:
		n.x1Prev, n.y2Prev = father.insertion.X1, 0
	case DepthNewSubplate:
		n.y2Prev = father.insertion.Y2
		// x1Prev unchanged (still father's stage-1 strip).
	case DepthSameSubplate:
		// x1Prev, y2Prev unchanged.
	}

	n.insertion = ins

	if ins.J1 != NoItem {
		it := n.scheme.Instance.Item(ins.J1)
		n.posStack[it.Stack]++
		n.itemNumber++
		n.itemArea += it.Area()
		n.squaredItemArea += it.Area() * it.Area()
		n.profit += it.Profit
	}
	if ins.J2 != NoItem {
		it := n.scheme.Instance.Item(ins.J2)
		n.posStack[it.Stack]++
		n.itemNumber++
		n.itemArea += it.Area()
		n.squaredItemArea += it.Area() * it.Area()
		n.profit += it.Profit
	}

	n.currentArea = n.scheme.Instance.PreviousBinArea(i)
	if n.Full() {
		if n.scheme.Params.CutType1 == ThreeStaged {
			n.currentArea += ins.X1 * h
		} else {
			n.currentArea += ins.Y2 * w
		}
	} else {
		n.currentArea += n.x1Prev*h + (ins.X1-n.x1Prev)*n.y2Prev + (ins.X3-n.x1Prev)*(ins.Y2-n.y2Prev)
	}
	n.waste = n.currentArea - n.itemArea

	return n
}

// Father returns the node this one was built from, or nil for the root.
func (n *Node) Father() *Node { return n.father }

// Insertion returns the insertion that produced this node.
func (n *Node) Insertion() Insertion { return n.insertion }

// Full reports whether every item copy has been placed.
func (n *Node) Full() bool {
	return n.itemNumber == n.totalItemNumber()
}

func (n *Node) totalItemNumber() instance.ItemPos {
	var total instance.ItemPos
	for s := 0; s < n.scheme.Instance.StackNumber(); s++ {
		total += n.scheme.Instance.StackSize(instance.StackId(s))
	}
	return total
}

// ItemNumber is the count of items placed so far.
func (n *Node) ItemNumber() instance.ItemPos { return n.itemNumber }

// BinNumber is the count of bins consumed so far.
func (n *Node) BinNumber() instance.BinPos { return n.binNumber }

// Area is the paid-for area of the current placement (items + waste).
func (n *Node) Area() instance.Area { return n.currentArea }

// ItemArea is the total area of placed items.
func (n *Node) ItemArea() instance.Area { return n.itemArea }

// SquaredItemArea is the sum of squared item areas (used by guide 3's key).
func (n *Node) SquaredItemArea() instance.Area { return n.squaredItemArea }

// Profit is the total profit of placed items.
func (n *Node) Profit() instance.Profit { return n.profit }

// Waste is current_area - item_area.
func (n *Node) Waste() instance.Area { return n.waste }

// WastePercentage is waste / area; 0 when area is 0 (e.g. at the root).
func (n *Node) WastePercentage() float64 {
	if n.currentArea == 0 {
		return 0
	}
	return float64(n.waste) / float64(n.currentArea)
}

// MeanItemArea is item_area / item_number.
func (n *Node) MeanItemArea() float64 {
	if n.itemNumber == 0 {
		return 0
	}
	return float64(n.itemArea) / float64(n.itemNumber)
}

// MeanSquaredItemArea is squared_item_area / item_number.
func (n *Node) MeanSquaredItemArea() float64 {
	if n.itemNumber == 0 {
		return 0
	}
	return float64(n.squaredItemArea) / float64(n.itemNumber)
}

// RemainingItemArea is the area of items not yet placed.
func (n *Node) RemainingItemArea() instance.Area {
	return n.scheme.Instance.ItemArea() - n.itemArea
}

// Width is the strip width objective's current value.
func (n *Node) Width() instance.Length {
	if n.scheme.Params.CutType1 == ThreeStaged {
		return n.X1Curr()
	}
	return n.Y2Curr()
}

// Height is the strip height objective's current value (same formula as
// Width: both stage-1 and two-staged cuts collapse to a single "extent").
func (n *Node) Height() instance.Length {
	return n.Width()
}

// X1Curr, Y2Curr, X3Curr are this node's own insertion's cut positions.
func (n *Node) X1Curr() instance.Length { return n.insertion.X1 }
func (n *Node) Y2Curr() instance.Length { return n.insertion.Y2 }
func (n *Node) X3Curr() instance.Length { return n.insertion.X3 }

// X1Prev, Y2Prev are the previous stage-1/-2 cuts.
func (n *Node) X1Prev() instance.Length { return n.x1Prev }
func (n *Node) Y2Prev() instance.Length { return n.y2Prev }

// X1Max, Y2Max are this node's insertion's upper bounds.
func (n *Node) X1Max() instance.Length { return n.insertion.X1Max }
func (n *Node) Y2Max() instance.Length { return n.insertion.Y2Max }

// Z1, Z2 are this node's insertion's enlargement flags.
func (n *Node) Z1() uint8 { return n.insertion.Z1 }
func (n *Node) Z2() uint8 { return n.insertion.Z2 }

// PosStack returns how many items of stack s have been placed.
func (n *Node) PosStack(s instance.StackId) instance.ItemPos { return n.posStack[s] }

// PosStackVector returns a copy of the whole pos_stack vector (for
// dominance/guide comparisons and tests).
func (n *Node) PosStackVector() []instance.ItemPos {
	return append([]instance.ItemPos(nil), n.posStack...)
}

// FirstStageOrientation is the orientation the current bin was opened
// under.
func (n *Node) FirstStageOrientation() instance.Orientation { return n.firstStageOrientation }

// LastInsertionDefect reports whether this node's insertion placed no
// item (a pure defect/waste filler) — node dominance and the
// chained-defect-insertion rule both key off this.
func (n *Node) LastInsertionDefect() bool {
	return n.binNumber > 0 && n.insertion.IsDefectOnly()
}

// Front is the geometric front used for dominance comparisons.
func (n *Node) Front() Front {
	return Front{
		I:      n.binNumber - 1,
		O:      n.firstStageOrientation,
		X1Prev: n.x1Prev, X3Curr: n.insertion.X3, X1Curr: n.insertion.X1,
		Y2Prev: n.y2Prev, Y2Curr: n.insertion.Y2,
	}
}

// Ubkp is the loose-but-admissible knapsack upper bound: if the
// remaining packable area can fit all remaining item area, every
// remaining item could in principle be placed, so the bound is the
// instance's total profit; otherwise extrapolate at the best
// profit/area ratio.
func (n *Node) Ubkp() instance.Profit {
	remainingItemArea := n.scheme.Instance.ItemArea() - n.itemArea
	remainingPackableArea := n.scheme.Instance.PackableArea() - n.currentArea
	if remainingPackableArea >= remainingItemArea {
		return n.scheme.Instance.ItemProfit()
	}
	j := n.scheme.Instance.MaxEfficiencyItem()
	it := n.scheme.Instance.Item(j)
	return n.profit + remainingPackableArea*it.Profit/it.Area()
}
