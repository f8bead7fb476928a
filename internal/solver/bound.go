package solver

import "github.com/rectguillotine/solver/internal/instance"

// Bound reports whether n can be pruned given the current incumbent: a
// true result means no descendant of n can possibly beat incumbent, so
// the driver should not recurse into n. incumbent may be nil, meaning
// no solution has been found yet. Ported from
// branching_scheme.cpp's Node::bound (lines 485-526), one case per
// Objective.
func (n *Node) Bound(incumbent *Node) bool {
	s := n.scheme
	inst := s.Instance

	switch s.Params.Objective {
	case Default:
		if incumbent == nil || !incumbent.Full() {
			return n.Ubkp() <= incumbentProfit(incumbent)
		}
		if n.Ubkp() != incumbent.Profit() {
			return n.Ubkp() <= incumbent.Profit()
		}
		return n.Waste() >= incumbent.Waste()

	case BinPacking:
		if incumbent == nil || !incumbent.Full() {
			return false
		}
		var iPos instance.BinPos = -1
		a := inst.ItemArea() + n.Waste()
		for a > 0 {
			iPos++
			a -= inst.Bin(iPos).Area()
		}
		return iPos+1 >= incumbent.BinNumber()

	case BinPackingWithLeftovers:
		if incumbent == nil || !incumbent.Full() {
			return false
		}
		return n.Waste() >= incumbent.Waste()

	case Knapsack:
		return n.Ubkp() <= incumbentProfit(incumbent)

	case StripPackingWidth:
		if incumbent == nil || !incumbent.Full() {
			return false
		}
		bound := instance.Length((n.Waste()+inst.ItemArea()-1)/instance.Area(inst.Bin(0).Height(instance.Vertical)) + 1)
		w := n.Width()
		if bound > w {
			w = bound
		}
		return w >= incumbent.Width()

	case StripPackingHeight:
		if incumbent == nil || !incumbent.Full() {
			return false
		}
		bound := instance.Length((n.Waste()+inst.ItemArea()-1)/instance.Area(inst.Bin(0).Height(instance.Horizontal)) + 1)
		ht := n.Height()
		if bound > ht {
			ht = bound
		}
		return ht >= incumbent.Height()

	default:
		return false
	}
}

func incumbentProfit(incumbent *Node) instance.Profit {
	if incumbent == nil {
		return 0
	}
	return incumbent.Profit()
}
