package solver

import "github.com/rectguillotine/solver/internal/instance"

// The following helpers compute, from this node acting as a prospective
// father, the geometric quantities needed to build an insertion at a
// given depth df — grounded on branching_scheme.cpp's
// last_bin/last_bin_orientation/x1_prev(df)/y2_prev(df)/x3_prev(df)/
// x1_max(df)/y2_max(df, x3).

func (n *Node) LastBin(df Depth) instance.BinPos {
	if df <= DepthNewBinVertical {
		if n.binNumber == 0 {
			return 0
		}
		return n.binNumber
	}
	return n.binNumber - 1
}

func (n *Node) LastBinOrientation(df Depth) instance.Orientation {
	switch df {
	case DepthNewBinVertical:
		return instance.Vertical
	case DepthNewBinHorizontal:
		return instance.Horizontal
	default:
		return n.firstStageOrientation
	}
}

func (n *Node) X1PrevAt(df Depth) instance.Length {
	switch df {
	case DepthNewBinVertical, DepthNewBinHorizontal:
		return 0
	case DepthNewStrip:
		return n.X1Curr()
	default: // DepthNewSubplate, DepthSameSubplate
		return n.x1Prev
	}
}

func (n *Node) X3PrevAt(df Depth) instance.Length {
	switch df {
	case DepthNewBinVertical, DepthNewBinHorizontal:
		return 0
	case DepthNewStrip:
		return n.X1Curr()
	case DepthNewSubplate:
		return n.x1Prev
	default: // DepthSameSubplate
		return n.X3Curr()
	}
}

func (n *Node) Y2PrevAt(df Depth) instance.Length {
	switch df {
	case DepthNewBinVertical, DepthNewBinHorizontal, DepthNewStrip:
		return 0
	case DepthNewSubplate:
		return n.Y2Curr()
	default: // DepthSameSubplate
		return n.y2Prev
	}
}

func (n *Node) X1MaxAt(df Depth) instance.Length {
	i := n.LastBin(df)
	bin := n.scheme.Instance.Bin(i)
	switch df {
	case DepthNewBinVertical, DepthNewBinHorizontal, DepthNewStrip:
		o := n.LastBinOrientation(df)
		x := bin.Width(o)
		if n.scheme.Params.Max1Cut != -1 && x > n.X1PrevAt(df)+n.scheme.Params.Max1Cut {
			x = n.X1PrevAt(df) + n.scheme.Params.Max1Cut
		}
		return x
	case DepthNewSubplate:
		o := n.LastBinOrientation(df)
		x := n.X1Max()
		if !n.scheme.Params.CutThroughDefects {
			for _, d := range bin.Defects {
				if n.scheme.Instance.Bottom(d, o) < n.Y2Curr() && n.scheme.Instance.Top(d, o) > n.Y2Curr() {
					if n.scheme.Instance.Left(d, o) > n.x1Prev {
						if x > n.scheme.Instance.Left(d, o) {
							x = n.scheme.Instance.Left(d, o)
						}
					}
				}
			}
		}
		return x
	default: // DepthSameSubplate
		return n.X1Max()
	}
}

func (n *Node) Y2MaxAt(df Depth, x3 instance.Length) instance.Length {
	i := n.LastBin(df)
	o := n.LastBinOrientation(df)
	bin := n.scheme.Instance.Bin(i)
	var y instance.Length
	if df == DepthSameSubplate {
		y = n.Y2Max()
	} else {
		y = bin.Height(o)
	}
	if !n.scheme.Params.CutThroughDefects {
		for _, d := range bin.Defects {
			if n.scheme.Instance.Left(d, o) < x3 && n.scheme.Instance.Right(d, o) > x3 {
				if n.scheme.Instance.Bottom(d, o) >= n.Y2PrevAt(df) {
					if y > n.scheme.Instance.Bottom(d, o) {
						y = n.scheme.Instance.Bottom(d, o)
					}
				}
			}
		}
	}
	return y
}

// Children enumerates every legal insertion out of n: one item, two
// stacked items (Roadef2018 only), or a defect filler — consistent with
// every staging, min/max-waste, defect and dominance rule in spec.md
// §4.C. The returned slice is the candidate set the depth-first driver
// sorts by guide and recurses into.
func (n *Node) Children() []Insertion {
	if n.Full() {
		return nil
	}
	s := n.scheme
	inst := s.Instance

	dfMin := DepthNewBinHorizontal
	if int(n.binNumber) == inst.BinNumber() {
		dfMin = DepthNewStrip
	} else if s.Params.FirstStageOrientation == OrientVertical {
		dfMin = DepthNewBinVertical
	} else if s.Params.FirstStageOrientation == OrientAny {
		nextBin := inst.Bin(n.binNumber)
		if len(nextBin.Defects) == 0 && nextBin.W == nextBin.H && s.NoOrientedItems {
			dfMin = DepthNewBinVertical
		}
	}

	dfMax := DepthSameSubplate
	if n.father == nil {
		dfMax = DepthNewBinVertical
	}

	var insertions []Insertion

	for df := dfMax; df >= dfMin; df-- {
		if df == DepthNewBinVertical && s.Params.FirstStageOrientation == OrientHorizontal {
			continue
		}

		stop := false
		for _, ins := range insertions {
			if ins.IsDefectOnly() {
				continue
			}
			switch {
			case df == DepthNewSubplate && ins.X1 == n.X1Curr() && ins.Y2 == n.Y2Curr():
				stop = true
			case df == DepthNewStrip && ins.X1 == n.X1Curr():
				stop = true
			case df < 0 && ins.Df >= 0:
				stop = true
			}
			if stop {
				break
			}
		}
		if stop {
			break
		}

		o := n.LastBinOrientation(df)
		x := n.X3PrevAt(df)
		y := n.Y2PrevAt(df)

		for si := 0; si < inst.StackNumber(); si++ {
			stk := instance.StackId(si)
			if n.posStack[stk] == inst.StackSize(stk) {
				continue
			}
			sp := s.StackPred[stk]
			if sp != -1 && n.posStack[sp] <= n.posStack[stk] {
				continue
			}

			j := inst.ItemAt(stk, n.posStack[stk]).Id

			if !s.Oriented(j) {
				item := inst.Item(j)
				b := item.W > item.H
				insertions = n.insertion1Item(insertions, j, !b, df)
				insertions = n.insertion1Item(insertions, j, b, df)
			} else {
				insertions = n.insertion1Item(insertions, j, false, df)
			}

			if s.Params.CutType2 == Roadef2018 {
				insertions = n.tryTwoItemInsertions(insertions, stk, j, o, df)
			}
		}

		if n.father == nil || !n.insertion.IsDefectOnly() {
			bin := inst.Bin(n.LastBin(df))
			for _, d := range bin.Defects {
				if inst.Left(d, o) >= x && inst.Bottom(d, o) >= y {
					insertions = n.insertionDefect(insertions, d, df)
				}
			}
		}
	}

	return insertions
}

// tryTwoItemInsertions enumerates the Roadef2018-only two-item-stack
// candidates for the item at the head of stack s paired with the item
// at the head (or second position, for s itself) of every stack
// s2 >= s. To break symmetry the smaller item id is always placed at
// the bottom; this reassigns the loop-local j, so once a swap happens
// it carries into later s2 iterations exactly as in the original.
func (n *Node) tryTwoItemInsertions(insertions []Insertion, s instance.StackId, jHead instance.ItemTypeId, o instance.Orientation, df Depth) []Insertion {
	inst := n.scheme.Instance
	j := jHead
	for s2i := int(s); s2i < inst.StackNumber(); s2i++ {
		s2 := instance.StackId(s2i)
		var j2 instance.ItemTypeId
		if s2 == s {
			if n.posStack[s2]+1 == inst.StackSize(s2) {
				continue
			}
			sp2 := n.scheme.StackPred[s2]
			if sp2 != -1 && n.posStack[sp2] <= n.posStack[s2] {
				continue
			}
			j2 = inst.ItemAt(s2, n.posStack[s2]+1).Id
		} else {
			if n.posStack[s2] == inst.StackSize(s2) {
				continue
			}
			sp2 := n.scheme.StackPred[s2]
			skip := (sp2 == s && n.posStack[sp2]+1 <= n.posStack[s2]) ||
				(sp2 != -1 && sp2 != s && n.posStack[sp2] <= n.posStack[s2])
			if skip {
				continue
			}
			j2 = inst.ItemAt(s2, n.posStack[s2]).Id
		}

		if j2 < j {
			j, j2 = j2, j
		}
		item1 := inst.Item(j)
		item2 := inst.Item(j2)

		if instance.Width(item1, false, o) == instance.Width(item2, false, o) {
			insertions = n.insertion2Items(insertions, j, false, j2, false, df)
		}
		if !n.scheme.Oriented(j2) && instance.Width(item1, false, o) == instance.Width(item2, true, o) {
			insertions = n.insertion2Items(insertions, j, false, j2, true, df)
		}
		if !n.scheme.Oriented(j) && instance.Width(item1, true, o) == instance.Width(item2, false, o) {
			insertions = n.insertion2Items(insertions, j, true, j2, false, df)
		}
		if !n.scheme.Oriented(j2) && !n.scheme.Oriented(j) && instance.Width(item1, true, o) == instance.Width(item2, true, o) {
			insertions = n.insertion2Items(insertions, j, true, j2, true, df)
		}
	}
	return insertions
}

func (n *Node) insertion1Item(insertions []Insertion, j instance.ItemTypeId, rotated bool, df Depth) []Insertion {
	s := n.scheme
	inst := s.Instance
	i := n.LastBin(df)
	o := n.LastBinOrientation(df)
	item := inst.Item(j)
	bin := inst.Bin(i)

	x := n.X3PrevAt(df) + instance.Width(item, rotated, o)
	y := n.Y2PrevAt(df) + instance.Height(item, rotated, o)
	if x > bin.Width(o) || y > bin.Height(o) {
		return insertions
	}

	if df == DepthSameSubplate && s.Params.CutType2 == Homogenous && n.insertion.J1 != j {
		return insertions
	}

	ins := Insertion{
		J1: j, J2: NoItem, Df: df,
		X1: x, Y2: y, X3: x,
		X1Max: n.X1MaxAt(df), Y2Max: n.Y2MaxAt(df, x),
		Z1: ZNeedsMinWaste, Z2: ZNeedsMinWaste,
	}

	if k := inst.ItemIntersectsDefect(n.X3PrevAt(df), n.Y2PrevAt(df), item, rotated, i, o); k != instance.NoDefect {
		if s.Params.CutType2 == Roadef2018 || s.Params.CutType2 == NonExact {
			ins.J1, ins.J2 = NoItem, j
		} else {
			return insertions
		}
	}

	if s.Params.CutType2 == Exact || s.Params.CutType2 == Homogenous {
		ins.Z2 = ZFrozen
	}

	return n.update(insertions, ins)
}

func (n *Node) insertion2Items(insertions []Insertion, j1 instance.ItemTypeId, rotate1 bool, j2 instance.ItemTypeId, rotate2 bool, df Depth) []Insertion {
	s := n.scheme
	inst := s.Instance
	i := n.LastBin(df)
	o := n.LastBinOrientation(df)
	item1 := inst.Item(j1)
	item2 := inst.Item(j2)
	bin := inst.Bin(i)

	hJ1 := instance.Height(item1, rotate1, o)
	x := n.X3PrevAt(df) + instance.Width(item1, rotate1, o)
	y := n.Y2PrevAt(df) + hJ1 + instance.Height(item2, rotate2, o)
	if x > bin.Width(o) || y > bin.Height(o) {
		return insertions
	}
	if inst.ItemIntersectsDefect(n.X3PrevAt(df), n.Y2PrevAt(df), item1, rotate1, i, o) != instance.NoDefect ||
		inst.ItemIntersectsDefect(n.X3PrevAt(df), n.Y2PrevAt(df)+hJ1, item2, rotate2, i, o) != instance.NoDefect {
		return insertions
	}

	ins := Insertion{
		J1: j1, J2: j2, Df: df,
		X1: x, Y2: y, X3: x,
		X1Max: n.X1MaxAt(df), Y2Max: n.Y2MaxAt(df, x),
		Z1: ZNeedsMinWaste, Z2: ZFrozen,
	}
	return n.update(insertions, ins)
}

func (n *Node) insertionDefect(insertions []Insertion, d instance.Defect, df Depth) []Insertion {
	s := n.scheme
	inst := s.Instance
	i := n.LastBin(df)
	o := n.LastBinOrientation(df)
	bin := inst.Bin(i)
	minWaste := s.Params.MinWaste

	x := maxLen(inst.Right(d, o), n.X3PrevAt(df)+minWaste)
	y := maxLen(inst.Top(d, o), n.Y2PrevAt(df)+minWaste)
	if x > bin.Width(o) || y > bin.Height(o) {
		return insertions
	}

	ins := Insertion{
		J1: NoItem, J2: NoItem, Df: df,
		X1: x, Y2: y, X3: x,
		X1Max: n.X1MaxAt(df), Y2Max: n.Y2MaxAt(df, x),
		Z1: ZFree, Z2: ZFree,
	}
	return n.update(insertions, ins)
}

func maxLen(a, b instance.Length) instance.Length {
	if a > b {
		return a
	}
	return b
}
