package solver

import "github.com/rectguillotine/solver/internal/instance"

// BranchingScheme ties an Instance and its Parameters to the derived,
// instance-wide facts the insertion generator and guides need on every
// call: whether rotation is allowed and no item type is orientation-fixed
// (NoOrientedItems), and which stack
// each stack is forced to stay behind (stack_pred) to break permutation
// symmetry among duplicate stacks. Grounded on branching_scheme.cpp's
// constructor (lines 13-47).
type BranchingScheme struct {
	Instance *instance.Instance
	Params   Parameters

	NoOrientedItems bool
	StackPred       []instance.StackId
}

// NewBranchingScheme builds the derived, instance-wide facts from inst
// and params.
func NewBranchingScheme(inst *instance.Instance, params Parameters) *BranchingScheme {
	// Two-staged cuts swap the roles of stage 1 and stage 2, so the
	// requested first-stage orientation swaps too.
	if params.CutType1 == TwoStaged {
		switch params.FirstStageOrientation {
		case OrientHorizontal:
			params.FirstStageOrientation = OrientVertical
		case OrientVertical:
			params.FirstStageOrientation = OrientHorizontal
		}
	}

	s := &BranchingScheme{Instance: inst, Params: params}

	if params.NoItemRotation {
		s.NoOrientedItems = false
	} else {
		s.NoOrientedItems = true
		for j := 0; j < inst.ItemTypeNumber(); j++ {
			if inst.Item(instance.ItemTypeId(j)).Oriented {
				s.NoOrientedItems = false
				break
			}
		}
	}

	s.StackPred = make([]instance.StackId, inst.StackNumber())
	for si := 0; si < inst.StackNumber(); si++ {
		s.StackPred[si] = -1
		for pi := si - 1; pi >= 0; pi-- {
			if inst.Equals(instance.StackId(pi), instance.StackId(si)) {
				s.StackPred[si] = instance.StackId(pi)
				break
			}
		}
	}

	return s
}

// Oriented reports whether item type j must keep its given orientation
// (either the item itself forbids rotation, or the scheme-wide
// no-rotation parameter does).
func (s *BranchingScheme) Oriented(j instance.ItemTypeId) bool {
	return s.Params.NoItemRotation || s.Instance.Item(j).Oriented
}

// Root returns a fresh empty node: no bin opened, no item placed.
func (s *BranchingScheme) Root() *Node {
	return newRootNode(s)
}

// Child builds the node obtained by applying ins to father.
func (s *BranchingScheme) Child(father *Node, ins Insertion) *Node {
	return newChildNode(father, ins)
}
