// Package solver implements the branching scheme core: the immutable
// partial-solution node, the insertion generator, the branching scheme's
// parameters and guide comparators, and the depth-first search driver
// that walks the tree they define.
package solver

import (
	"fmt"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solverrors"
)

// CutType1 selects whether a bin is cut in two or three alternating
// stages.
type CutType1 int

const (
	ThreeStaged CutType1 = iota
	TwoStaged
)

// CutType2 selects the policy applied to stage-2 subplates: how an item
// that would otherwise overlap a defect is handled, and whether a
// second item may be stacked on top of the first in a stage-3 subplate.
type CutType2 int

const (
	Roadef2018 CutType2 = iota
	NonExact
	Exact
	Homogenous
)

func (c CutType2) String() string {
	switch c {
	case Roadef2018:
		return "roadef2018"
	case NonExact:
		return "non-exact"
	case Exact:
		return "exact"
	case Homogenous:
		return "homogenous"
	default:
		return "unknown"
	}
}

// FirstStageOrientation is the branching scheme parameter; Any lets the
// search explore both Vertical and Horizontal first bins.
type FirstStageOrientation int

const (
	OrientVertical FirstStageOrientation = iota
	OrientHorizontal
	OrientAny
)

// Objective selects which quantity the search maximizes/minimizes and,
// correspondingly, which bound and which solution ordering apply.
type Objective int

const (
	Default Objective = iota
	Knapsack
	BinPacking
	BinPackingWithLeftovers
	StripPackingWidth
	StripPackingHeight
)

// Depth is the "depth of the father" tag of an Insertion: how much of
// the cut hierarchy (bin / stage-1 strip / stage-2 subplate) the new
// insertion shares with its father.
type Depth int8

const (
	DepthNewBinHorizontal Depth = -2
	DepthNewBinVertical   Depth = -1
	DepthNewStrip         Depth = 0
	DepthNewSubplate      Depth = 1
	DepthSameSubplate     Depth = 2
)

// NoItem is the sentinel ItemTypeId meaning "no item".
const NoItem instance.ItemTypeId = -1

// Z-flag values for Insertion.Z1/Z2.
const (
	ZNeedsMinWaste uint8 = 0 // next enlargement must add at least min_waste
	ZFree          uint8 = 1 // cut is waste-ended, can grow by any amount
	ZFrozen        uint8 = 2 // y2 only: frozen by a stacked two-item subplate
)

// Insertion is a candidate move out of a node: placing one item, two
// stacked items, or a defect-induced waste strip.
type Insertion struct {
	J1, J2         instance.ItemTypeId
	Df             Depth
	X1, Y2, X3     instance.Length
	X1Max, Y2Max   instance.Length
	Z1, Z2         uint8
}

func (ins Insertion) String() string {
	return fmt.Sprintf("j1=%d j2=%d df=%d x1=%d y2=%d x3=%d x1max=%d y2max=%d z1=%d z2=%d",
		ins.J1, ins.J2, ins.Df, ins.X1, ins.Y2, ins.X3, ins.X1Max, ins.Y2Max, ins.Z1, ins.Z2)
}

// IsDefectOnly reports whether this insertion places no item (pure
// waste/defect filler).
func (ins Insertion) IsDefectOnly() bool {
	return ins.J1 == NoItem && ins.J2 == NoItem
}

// Front is the geometric state needed to keep placing into the current
// bin: the previous/current stage-1 cut, the current stage-3 cut, and
// the previous/current stage-2 cut.
type Front struct {
	I                    instance.BinPos
	O                    instance.Orientation
	X1Prev, X3Curr, X1Curr instance.Length
	Y2Prev, Y2Curr       instance.Length
}

// jrx records an item placed above a defect in the current stage-2
// subplate: its id, whether it was rotated, and its left edge — needed
// to re-validate it if the subplate later grows upward.
type jrx struct {
	J       instance.ItemTypeId
	Rotated bool
	X       instance.Length
}

// Parameters configures the branching scheme: cut staging, defect and
// min/max-cut policy, rotation, and the objective being optimized.
type Parameters struct {
	CutType1              CutType1
	CutType2              CutType2
	FirstStageOrientation FirstStageOrientation
	Min1Cut, Max1Cut      instance.Length // Max*Cut == -1 disables the bound
	Min2Cut, Max2Cut      instance.Length
	MinWaste              instance.Length
	One2Cut               bool
	NoItemRotation        bool
	CutThroughDefects     bool
	Objective             Objective
}

// DefaultParameters returns parameters equivalent to the original
// three-staged, non-exact, vertical-first, rotatable defaults.
func DefaultParameters() Parameters {
	return Parameters{
		CutType1:              ThreeStaged,
		CutType2:              NonExact,
		FirstStageOrientation: OrientVertical,
		Min1Cut:               0,
		Max1Cut:               -1,
		Min2Cut:               0,
		Max2Cut:               -1,
		MinWaste:              1,
		Objective:             Default,
	}
}

// SetRoadef2018 overwrites p with the Roadef2018 challenge preset:
// three-staged, Roadef2018 stage-2 policy, vertical first stage,
// min1cut=100, max1cut=3500, min2cut=100, min_waste=20, rotatable items,
// cuts may not cross defects.
func (p *Parameters) SetRoadef2018() {
	p.CutType1 = ThreeStaged
	p.CutType2 = Roadef2018
	p.FirstStageOrientation = OrientVertical
	p.Min1Cut = 100
	p.Max1Cut = 3500
	p.Min2Cut = 100
	p.Max2Cut = -1
	p.MinWaste = 20
	p.NoItemRotation = false
	p.CutThroughDefects = false
}

// SetPredefined decodes a 4-character code into p, following
// cut_type_1 / cut_type_2 / first_stage_orientation / rotation. Invalid
// characters leave the corresponding field at its prior value and are
// reported as a ConfigError.
func (p *Parameters) SetPredefined(code string) error {
	if len(code) != 4 {
		return solverrors.NewConfigError(fmt.Sprintf("predefined branching scheme code %q must have exactly 4 characters", code), nil)
	}
	var errs []string

	switch code[0] {
	case '3':
		p.CutType1 = ThreeStaged
	case '2':
		p.CutType1 = TwoStaged
	default:
		errs = append(errs, fmt.Sprintf("1st character %q invalid, expected '3' or '2'", code[0]))
	}

	switch code[1] {
	case 'R':
		p.CutType2 = Roadef2018
	case 'N':
		p.CutType2 = NonExact
	case 'E':
		p.CutType2 = Exact
	case 'H':
		p.CutType2 = Homogenous
	default:
		errs = append(errs, fmt.Sprintf("2nd character %q invalid, expected one of R/N/E/H", code[1]))
	}

	switch code[2] {
	case 'V':
		p.FirstStageOrientation = OrientVertical
	case 'H':
		p.FirstStageOrientation = OrientHorizontal
	case 'A':
		p.FirstStageOrientation = OrientAny
	default:
		errs = append(errs, fmt.Sprintf("3rd character %q invalid, expected one of V/H/A", code[2]))
	}

	switch code[3] {
	case 'R':
		p.NoItemRotation = false
	case 'O':
		p.NoItemRotation = true
	default:
		errs = append(errs, fmt.Sprintf("4th character %q invalid, expected 'R' or 'O'", code[3]))
	}

	if len(errs) > 0 {
		return solverrors.NewConfigError(fmt.Sprintf("predefined branching scheme code %q: %v", code, errs), nil)
	}
	return nil
}
