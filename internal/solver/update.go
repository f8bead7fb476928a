package solver

import "github.com/rectguillotine/solver/internal/instance"

// update runs the full constraint-closure cascade on a freshly built
// candidate insertion out of n: min1cut/min2cut enforcement, one2cut
// and two-staged snapping, reconciliation against n's own current
// stage-1/stage-2 cut when continuing into the same strip/subplate,
// defect-avoidance closure on both x1 and y2 (re-validating items
// already placed above a defect in the current subplate), the
// minimum-waste border halo, and finally front-dominance pruning
// against the insertions already collected for this node. Grounded on
// branching_scheme.cpp's Node::update (lines 1091-1453); every branch
// below mirrors a numbered block there.
func (n *Node) update(insertions []Insertion, ins Insertion) []Insertion {
	s := n.scheme
	inst := s.Instance
	minWaste := s.Params.MinWaste
	i := n.LastBin(ins.Df)
	o := n.LastBinOrientation(ins.Df)
	bin := inst.Bin(i)
	w := bin.Width(o)
	h := bin.Height(o)

	// min1cut
	if (ins.J1 != NoItem || ins.J2 != NoItem) && ins.X1-n.X1PrevAt(ins.Df) < s.Params.Min1Cut {
		if ins.Z1 == ZNeedsMinWaste {
			ins.X1 = maxLen(ins.X1+minWaste, n.X1PrevAt(ins.Df)+s.Params.Min1Cut)
			ins.Z1 = ZFree
		} else {
			ins.X1 = n.X1PrevAt(ins.Df) + s.Params.Min1Cut
		}
	}

	// min2cut
	if (ins.J1 != NoItem || ins.J2 != NoItem) && ins.Y2-n.Y2PrevAt(ins.Df) < s.Params.Min2Cut {
		switch ins.Z2 {
		case ZNeedsMinWaste:
			ins.Y2 = maxLen(ins.Y2+minWaste, n.Y2PrevAt(ins.Df)+s.Params.Min2Cut)
			ins.Z2 = ZFree
		case ZFree:
			ins.Y2 = n.Y2PrevAt(ins.Df) + s.Params.Min2Cut
		default: // ZFrozen
			return insertions
		}
	}

	// one2cut: at most one stage-2 cut per subplate, so a continuing cut
	// must run the full bin height.
	if s.Params.One2Cut && ins.Df == DepthNewSubplate && n.Y2PrevAt(ins.Df) != 0 && ins.Y2 != h {
		switch ins.Z2 {
		case ZNeedsMinWaste:
			if ins.Y2+minWaste > h {
				return insertions
			}
			ins.Y2 = h
		case ZFree:
			ins.Y2 = h
		default:
			return insertions
		}
	}

	// two-staged guillotine: the stage-1 cut always runs the full width.
	if s.Params.CutType1 == TwoStaged && ins.X1 != w {
		switch ins.Z1 {
		case ZNeedsMinWaste:
			if ins.X1+minWaste > w {
				return insertions
			}
			ins.X1 = w
		default: // ZFree
			ins.X1 = w
		}
	}

	// Reconcile x1 against n's own current stage-1 cut when continuing
	// into the same strip/subplate (df >= 1): a new insertion cannot
	// narrow the strip below what's already been cut.
	if ins.Df >= DepthNewSubplate {
		x1c := n.X1Curr()
		switch ins.Z1 {
		case ZNeedsMinWaste:
			switch {
			case ins.X1+minWaste <= x1c:
				ins.X1 = x1c
				ins.Z1 = n.Z1()
			case ins.X1 < x1c:
				if n.Z1() == ZNeedsMinWaste {
					ins.X1 = x1c + minWaste
				} else {
					ins.X1 = ins.X1 + minWaste
				}
				ins.Z1 = ZFree
			case ins.X1 == x1c:
				// nothing to do
			default: // x1c < ins.X1
				if n.Z1() == ZNeedsMinWaste && ins.X1 < x1c+minWaste {
					ins.X1 = ins.X1 + minWaste
					ins.Z1 = ZFree
				}
			}
		default: // ZFree
			if ins.X1 <= x1c {
				ins.X1 = x1c
				ins.Z1 = n.Z1()
			} else if n.Z1() == ZNeedsMinWaste && x1c+minWaste > ins.X1 {
				ins.X1 = x1c + minWaste
			}
		}
	}

	// Same reconciliation for y2 when continuing into the same subplate
	// (df == 2), additionally tracking the frozen (z2 == 2) state a
	// stacked two-item insertion leaves behind.
	if ins.Df == DepthSameSubplate {
		y2c := n.Y2Curr()
		switch ins.Z2 {
		case ZNeedsMinWaste:
			switch {
			case ins.Y2+minWaste <= y2c:
				ins.Y2 = y2c
				ins.Z2 = n.Z2()
			case ins.Y2 < y2c:
				if n.Z2() == ZFrozen {
					return insertions
				} else if n.Z2() == ZNeedsMinWaste {
					ins.Y2 = y2c + minWaste
					ins.Z2 = ZFree
				} else {
					ins.Y2 = ins.Y2 + minWaste
					ins.Z2 = ZFree
				}
			case ins.Y2 == y2c:
				if n.Z2() == ZFrozen {
					ins.Z2 = ZFrozen
				}
			case ins.Y2 < y2c+minWaste: // y2c < ins.Y2 < y2c+minWaste
				if n.Z2() == ZFrozen {
					return insertions
				} else if n.Z2() == ZNeedsMinWaste {
					ins.Y2 = ins.Y2 + minWaste
					ins.Z2 = ZFree
				}
			default: // y2c+minWaste <= ins.Y2
				if n.Z2() == ZFrozen {
					return insertions
				}
			}
		case ZFree:
			switch {
			case ins.Y2 <= y2c:
				ins.Y2 = y2c
				ins.Z2 = n.Z2()
			case ins.Y2 < y2c+minWaste:
				if n.Z2() == ZFrozen {
					return insertions
				} else if n.Z2() == ZNeedsMinWaste {
					ins.Y2 = y2c + minWaste
				}
			default:
				if n.Z2() == ZFrozen {
					return insertions
				}
			}
		default: // ZFrozen
			switch {
			case ins.Y2 < y2c:
				return insertions
			case ins.Y2 == y2c:
				// nothing to do
			case ins.Y2 < y2c+minWaste:
				if n.Z2() == ZFrozen || n.Z2() == ZNeedsMinWaste {
					return insertions
				}
			default:
				if n.Z2() == ZFrozen {
					return insertions
				}
			}
		}
	}

	// Defect-avoidance closure on x1: push the stage-1 cut past any
	// defect it would otherwise cross.
	for {
		k := inst.XIntersectsDefect(ins.X1, i, o)
		if k == instance.NoDefect {
			break
		}
		d := inst.Defect(i, k)
		if ins.Z1 == ZNeedsMinWaste {
			ins.X1 = maxLen(inst.Right(d, o), ins.X1+minWaste)
		} else {
			ins.X1 = inst.Right(d, o)
		}
		ins.Z1 = ZFree
	}

	// Snap to the border if left with an unusably thin waste strip.
	if ins.X1 < w && ins.X1+minWaste > w {
		if ins.Z1 == ZFree {
			ins.X1 = w
			ins.Z1 = ZNeedsMinWaste
		} else {
			return insertions
		}
	}
	if ins.X1 > ins.X1Max {
		return insertions
	}

	// Defect-avoidance closure on y2, re-validating every item already
	// known to sit above a defect in the current subplate (aboveDefect)
	// and the not-yet-committed second item of a two-item insertion.
	y2Fixed := ins.Z2 == ZFrozen || (ins.Df == DepthSameSubplate && n.Z2() == ZFrozen)

	for {
		found := false

		if k := inst.YIntersectsDefect(n.X1PrevAt(ins.Df), ins.X1, ins.Y2, i, o); k != instance.NoDefect {
			if y2Fixed {
				return insertions
			}
			d := inst.Defect(i, k)
			if ins.Z2 == ZNeedsMinWaste {
				ins.Y2 = maxLen(inst.Top(d, o), ins.Y2+minWaste)
			} else {
				ins.Y2 = inst.Top(d, o)
			}
			ins.Z2 = ZFree
			found = true
		}

		if ins.Df == DepthSameSubplate {
			for _, item := range n.aboveDefect {
				it := inst.Item(item.J)
				hJ2 := instance.Height(it, item.Rotated, o)
				l := item.X
				if k := inst.ItemIntersectsDefect(l, ins.Y2-hJ2, it, item.Rotated, i, o); k != instance.NoDefect {
					if y2Fixed {
						return insertions
					}
					d := inst.Defect(i, k)
					if ins.Z2 == ZNeedsMinWaste {
						ins.Y2 = maxLen(inst.Top(d, o)+hJ2, ins.Y2+minWaste)
					} else {
						ins.Y2 = inst.Top(d, o) + hJ2
					}
					ins.Z2 = ZFree
					found = true
				}
			}
		}

		if ins.J1 == NoItem && ins.J2 != NoItem {
			it := inst.Item(ins.J2)
			wJ := ins.X3 - n.X3PrevAt(ins.Df)
			rotateJ2 := instance.Width(it, true, o) == wJ
			hJ2 := instance.Height(it, rotateJ2, o)
			l := n.X3PrevAt(ins.Df)
			if k := inst.ItemIntersectsDefect(l, ins.Y2-hJ2, it, rotateJ2, i, o); k != instance.NoDefect {
				if y2Fixed {
					return insertions
				}
				d := inst.Defect(i, k)
				if ins.Z2 == ZNeedsMinWaste {
					ins.Y2 = maxLen(inst.Top(d, o)+hJ2, ins.Y2+minWaste)
				} else {
					ins.Y2 = inst.Top(d, o) + hJ2
				}
				ins.Z2 = ZFree
				found = true
			}
		}

		if !found {
			break
		}
	}

	// Snap to the bin's top border if left with an unusably thin strip,
	// re-checking every above-defect item at the snapped height.
	if ins.Y2 < h && ins.Y2+minWaste > h {
		if ins.Z2 != ZFree {
			return insertions
		}
		ins.Y2 = h
		ins.Z2 = ZNeedsMinWaste

		if ins.Df == DepthSameSubplate {
			for _, item := range n.aboveDefect {
				it := inst.Item(item.J)
				l := item.X
				hJ2 := instance.Height(it, item.Rotated, o)
				if inst.ItemIntersectsDefect(l, ins.Y2-hJ2, it, item.Rotated, i, o) != instance.NoDefect {
					return insertions
				}
			}
		}
		if ins.J1 == NoItem && ins.J2 != NoItem {
			it := inst.Item(ins.J2)
			wJ := ins.X3 - n.X3PrevAt(ins.Df)
			rotateJ2 := instance.Width(it, true, o) == wJ
			hJ2 := instance.Height(it, rotateJ2, o)
			l := n.X3PrevAt(ins.Df)
			if inst.ItemIntersectsDefect(l, ins.Y2-hJ2, it, rotateJ2, i, o) != instance.NoDefect {
				return insertions
			}
		}
	}
	if ins.Y2 > ins.Y2Max {
		return insertions
	}

	return n.pruneAndInsert(insertions, ins)
}

// tentativeFront is the front an insertion would produce if applied to
// n, computed via the same newChildNode construction the search uses,
// so dominance comparisons see exactly the geometry the real child
// would have.
func (n *Node) tentativeFront(ins Insertion) Front {
	return newChildNode(n, ins).Front()
}

// pruneAndInsert applies front-dominance pruning: drop ins if an
// existing insertion already dominates it, drop any existing insertion
// ins now dominates, and otherwise keep both. Grounded on
// branching_scheme.cpp's Node::update dominance loop (lines 1412-1453).
// In the guard that lets an existing insertion reject ins, ins.J1 may
// match either it.J1 or it.J2 but ins.J2 is matched against it.J2 only.
func (n *Node) pruneAndInsert(insertions []Insertion, ins Insertion) []Insertion {
	fIns := n.tentativeFront(ins)
	rejected := false

	result := insertions[:0]
	for _, it := range insertions {
		keep := true

		if !rejected && ins.IsDefectOnly() && it.IsDefectOnly() {
			if ins.Df != DepthNewBinVertical && ins.X1 == it.X1 && ins.Y2 == it.Y2 && ins.X3 == it.X3 {
				rejected = true
			}
		}

		if !rejected && !it.IsDefectOnly() &&
			(ins.J1 == NoItem || ins.J1 == it.J1 || ins.J1 == it.J2) &&
			(ins.J2 == NoItem || ins.J2 == it.J2) {
			if n.scheme.DominatesFront(n.tentativeFront(it), fIns) {
				rejected = true
			}
		}

		if !rejected && !ins.IsDefectOnly() &&
			(it.J1 == ins.J1 || it.J1 == ins.J2) &&
			(it.J2 == ins.J2 || it.J2 == ins.J1) {
			if n.scheme.DominatesFront(fIns, n.tentativeFront(it)) {
				keep = false
			}
		}

		if keep {
			result = append(result, it)
		}
	}

	if rejected {
		return result
	}
	return append(result, ins)
}
