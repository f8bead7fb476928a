package solver

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Regression case ported from the original packing-solver's
// InsertionNoDefect test: a single rotatable 500x1000 item on a
// 6000x3210 bin carrying a 2x2 defect far from either orientation's
// footprint. Both rotations of the item are legal root insertions; the
// insertion that would only clear space for the defect is dominated by
// the item insertion that already covers it, so exactly two children
// survive.
func TestChildrenDefectDominatedByItemInsertion(t *testing.T) {
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 500, H: 1000, Profit: 500000, Copies: 1, Oriented: false},
	}
	bins := []instance.Bin{
		{W: 6000, H: 3210, Copies: 1, Defects: []instance.Defect{
			{Id: 0, Bin: 0, Rect: instance.Rect{X: 2000, Y: 1500, W: 2, H: 2}},
		}},
	}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)

	params := DefaultParameters()
	params.SetRoadef2018()
	scheme := NewBranchingScheme(inst, params)

	children := scheme.Root().Children()
	require.Len(t, children, 2)

	want := []Insertion{
		{J1: 0, J2: NoItem, Df: DepthNewBinVertical, X1: 1000, Y2: 500, X3: 1000, X1Max: 3500, Y2Max: 3210, Z1: ZNeedsMinWaste, Z2: ZNeedsMinWaste},
		{J1: 0, J2: NoItem, Df: DepthNewBinVertical, X1: 500, Y2: 1000, X3: 500, X1Max: 3500, Y2Max: 3210, Z1: ZNeedsMinWaste, Z2: ZNeedsMinWaste},
	}
	assert.ElementsMatch(t, want, children)
}

func TestChildrenRejectsWhenNoStackHasRemainingItems(t *testing.T) {
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 100, H: 100, Profit: 1, Copies: 1, Oriented: true},
	}
	bins := []instance.Bin{{W: 100, H: 100, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)

	params := DefaultParameters()
	scheme := NewBranchingScheme(inst, params)
	root := scheme.Root()
	children := root.Children()
	require.Len(t, children, 1)

	leaf := scheme.Child(root, children[0])
	assert.True(t, leaf.Full())
	assert.Empty(t, leaf.Children())
}
