package solver

// DominatesFront reports whether front f1 makes f2 redundant: anything
// f2 can still do (close the current subplate, start a new strip/bin),
// f1 can do at least as cheaply. Grounded on branching_scheme.cpp's
// BranchingScheme::dominates(Front, Front) (lines 300-314) — the case
// table lives in spec.md §6.
func (s *BranchingScheme) DominatesFront(f1, f2 Front) bool {
	if f1.I < f2.I {
		return true
	}
	if f1.I > f2.I {
		return false
	}
	if f1.O != f2.O {
		return false
	}
	bin := s.Instance.Bin(f1.I)
	if f2.Y2Curr != bin.Height(f1.O) && f1.X1Prev > f2.X1Prev {
		return false
	}
	if f1.X1Curr > f2.X1Curr {
		return false
	}

	switch {
	case f2.Y2Prev < f1.Y2Prev:
		if f1.X1Curr > f2.X3Curr {
			return false
		}
	case f2.Y2Prev < f1.Y2Curr:
		if f1.X3Curr > f2.X3Curr {
			return false
		}
	default: // f2.Y2Prev <= h
		if f1.X1Prev > f2.X3Curr {
			return false
		}
	}

	switch {
	case f2.Y2Curr < f1.Y2Prev:
		if f1.X1Curr > f2.X1Prev {
			return false
		}
	case f2.Y2Curr < f1.Y2Curr:
		if f1.X3Curr > f2.X1Prev {
			return false
		}
	default: // f2.Y2Curr <= h: no constraint
	}

	return true
}

// DominatesNode reports whether node1 makes node2 redundant: they have
// placed the exact same items (same pos_stack) and node1's front
// dominates node2's, and node2 isn't itself a defect-only filler
// (which the search always keeps, since it is what made the next
// insertion legal in the first place).
func (s *BranchingScheme) DominatesNode(node1, node2 *Node) bool {
	if node2.LastInsertionDefect() {
		return false
	}
	p1, p2 := node1.posStack, node2.posStack
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			return false
		}
	}
	return s.DominatesFront(node1.Front(), node2.Front())
}
