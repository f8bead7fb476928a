package instance

import "fmt"

// Instance is the immutable problem description: item types grouped into
// stacks, a sequence of bins carrying defects, and the memoized prefix
// sums the branching scheme's area bookkeeping depends on. Construct one
// with New and never mutate it afterwards — it is shared, read-only,
// across every search worker.
type Instance struct {
	items  []Item      // indexed by ItemTypeId
	stacks [][]ItemPos // stacks[s] = item ids in stack order
	bins   []Bin

	itemArea        Area
	itemProfit      Profit
	packableArea    Area
	prevBinArea     []Area // prevBinArea[i] = sum of bins[0:i].Area()*Copies
	maxEfficiencyID ItemTypeId
}

// New builds an Instance from item and bin tables. Items must already
// carry their Stack/Pos assignment; items sharing a Stack must be given
// in stack order (increasing Pos).
func New(items []Item, bins []Bin) (*Instance, error) {
	inst := &Instance{items: items, bins: bins}

	maxStack := StackId(-1)
	for _, it := range items {
		if it.Stack > maxStack {
			maxStack = it.Stack
		}
	}
	inst.stacks = make([][]ItemPos, maxStack+1)
	for idx, it := range items {
		if int(it.Pos) != len(inst.stacks[it.Stack]) {
			return nil, fmt.Errorf("instance: item %d has pos %d but stack %d already has %d items", it.Id, it.Pos, it.Stack, len(inst.stacks[it.Stack]))
		}
		inst.stacks[it.Stack] = append(inst.stacks[it.Stack], ItemPos(idx))
	}

	var bestRatio float64
	inst.maxEfficiencyID = -1
	for _, it := range items {
		copies := Area(it.Copies)
		inst.itemArea += it.Area() * copies
		inst.itemProfit += it.Profit * copies
		if it.Area() > 0 {
			ratio := float64(it.Profit) / float64(it.Area())
			if inst.maxEfficiencyID == -1 || ratio > bestRatio {
				bestRatio = ratio
				inst.maxEfficiencyID = it.Id
			}
		}
	}

	inst.prevBinArea = make([]Area, len(bins)+1)
	for i, b := range bins {
		inst.packableArea += b.Area() * Area(b.Copies)
		inst.prevBinArea[i+1] = inst.prevBinArea[i] + b.Area()*Area(b.Copies)
	}

	return inst, nil
}

// ItemTypeNumber returns the number of distinct item types.
func (in *Instance) ItemTypeNumber() int { return len(in.items) }

// StackNumber returns the number of stacks.
func (in *Instance) StackNumber() int { return len(in.stacks) }

// StackSize returns the number of items in stack s.
func (in *Instance) StackSize(s StackId) ItemPos { return ItemPos(len(in.stacks[s])) }

// Item returns item type j.
func (in *Instance) Item(j ItemTypeId) Item { return in.items[j] }

// ItemAt returns the k-th item of stack s.
func (in *Instance) ItemAt(s StackId, k ItemPos) Item {
	return in.items[in.stacks[s][k]]
}

// BinNumber returns the number of bins in the sequence.
func (in *Instance) BinNumber() int { return len(in.bins) }

// Bin returns bin i.
func (in *Instance) Bin(i BinPos) Bin { return in.bins[i] }

// ItemArea is the total area of all item copies.
func (in *Instance) ItemArea() Area { return in.itemArea }

// ItemProfit is the total profit of all item copies.
func (in *Instance) ItemProfit() Profit { return in.itemProfit }

// PackableArea is the total area offered by all bins.
func (in *Instance) PackableArea() Area { return in.packableArea }

// PreviousBinArea returns the memoized prefix sum of the area of bins
// strictly before bin i.
func (in *Instance) PreviousBinArea(i BinPos) Area { return in.prevBinArea[i] }

// MaxEfficiencyItem returns the item type with the highest profit/area
// ratio, used by the knapsack upper bound.
func (in *Instance) MaxEfficiencyItem() ItemTypeId { return in.maxEfficiencyID }

// Width returns the width of item it under rotation and orientation o.
func Width(it Item, rotated bool, o Orientation) Length {
	w, h := it.W, it.H
	if rotated {
		w, h = h, w
	}
	if o == Vertical {
		return w
	}
	return h
}

// Height returns the height of item it under rotation and orientation o.
func Height(it Item, rotated bool, o Orientation) Length {
	w, h := it.W, it.H
	if rotated {
		w, h = h, w
	}
	if o == Vertical {
		return h
	}
	return w
}

// defect edges under orientation o; Horizontal swaps the roles of x/y
// exactly as Bin.Width/Height do.
func left(d Defect, o Orientation) Length {
	if o == Vertical {
		return d.Rect.X
	}
	return d.Rect.Y
}
func right(d Defect, o Orientation) Length {
	if o == Vertical {
		return d.Rect.X + d.Rect.W
	}
	return d.Rect.Y + d.Rect.H
}
func bottom(d Defect, o Orientation) Length {
	if o == Vertical {
		return d.Rect.Y
	}
	return d.Rect.X
}
func top(d Defect, o Orientation) Length {
	if o == Vertical {
		return d.Rect.Y + d.Rect.H
	}
	return d.Rect.X + d.Rect.W
}

// Left, Right, Bottom, Top expose the oriented defect edges.
func (in *Instance) Left(d Defect, o Orientation) Length   { return left(d, o) }
func (in *Instance) Right(d Defect, o Orientation) Length  { return right(d, o) }
func (in *Instance) Bottom(d Defect, o Orientation) Length { return bottom(d, o) }
func (in *Instance) Top(d Defect, o Orientation) Length    { return top(d, o) }

// ItemIntersectsDefect returns the id of a defect whose open interior
// overlaps the rectangle of item it placed with lower-left corner (x, y)
// (rotated, under orientation o) in bin i, or NoDefect. Touching on an
// edge is not an intersection.
func (in *Instance) ItemIntersectsDefect(x, y Length, it Item, rotated bool, i BinPos, o Orientation) DefectId {
	w := Width(it, rotated, o)
	h := Height(it, rotated, o)
	return in.RectIntersectsDefect(x, x+w, y, y+h, i, o)
}

// RectIntersectsDefect returns the id of a defect in bin i whose open
// interior overlaps the rectangle [l,r)x[b,t) (under orientation o), or
// NoDefect.
func (in *Instance) RectIntersectsDefect(l, r, b, t Length, i BinPos, o Orientation) DefectId {
	for _, d := range in.bins[i].Defects {
		dl, dr, db, dt := left(d, o), right(d, o), bottom(d, o), top(d, o)
		if l < dr && dl < r && b < dt && db < t {
			return d.Id
		}
	}
	return NoDefect
}

// XIntersectsDefect returns the id of a defect in bin i that the vertical
// (oriented) line x = x crosses, or NoDefect. A line exactly on a
// defect's edge does not cross it.
func (in *Instance) XIntersectsDefect(x Length, i BinPos, o Orientation) DefectId {
	for _, d := range in.bins[i].Defects {
		dl, dr, db, dt := left(d, o), right(d, o), bottom(d, o), top(d, o)
		if dl < x && x < dr && db < dt {
			return d.Id
		}
	}
	return NoDefect
}

// YIntersectsDefect returns the id of a defect in bin i that the
// horizontal (oriented) segment [xLo, xHi] x {y} crosses, or NoDefect.
func (in *Instance) YIntersectsDefect(xLo, xHi, y Length, i BinPos, o Orientation) DefectId {
	for _, d := range in.bins[i].Defects {
		dl, dr, db, dt := left(d, o), right(d, o), bottom(d, o), top(d, o)
		if db < y && y < dt && dl < xHi && xLo < dr {
			return d.Id
		}
	}
	return NoDefect
}

// Defect looks up a defect by id within bin i.
func (in *Instance) Defect(i BinPos, id DefectId) Defect {
	for _, d := range in.bins[i].Defects {
		if d.Id == id {
			return d
		}
	}
	return Defect{Id: NoDefect}
}

// Equals reports whether stacks s1 and s2 contain, item by item,
// identical (profit, copies, dimensions up to rotation) items — the
// symmetry-breaking predicate behind stack_pred.
func (in *Instance) Equals(s1, s2 StackId) bool {
	if in.StackSize(s1) != in.StackSize(s2) {
		return false
	}
	for k := ItemPos(0); k < in.StackSize(s1); k++ {
		a := in.ItemAt(s1, k)
		b := in.ItemAt(s2, k)
		if a.Oriented && b.Oriented &&
			a.W == b.W && a.H == b.H &&
			a.Profit == b.Profit && a.Copies == b.Copies {
			continue
		}
		if !a.Oriented && !b.Oriented && a.Profit == b.Profit && a.Copies == b.Copies &&
			((a.W == b.W && a.H == b.H) || (a.W == b.H && a.H == b.W)) {
			continue
		}
		return false
	}
	return true
}
