package solver

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleItemInstance(t *testing.T) *instance.Instance {
	t.Helper()
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 1000, H: 500, Profit: 1000, Copies: 1},
	}
	bins := []instance.Bin{{W: 3000, H: 3000, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)
	return inst
}

// No item type is individually marked Oriented, so NoOrientedItems must
// track only the scheme-wide rotation flag: rotation disabled means items
// are effectively all oriented, not "none of them are".
func TestNoOrientedItemsShortCircuitsOnNoItemRotation(t *testing.T) {
	inst := singleItemInstance(t)

	params := DefaultParameters()
	params.NoItemRotation = true
	s := NewBranchingScheme(inst, params)
	assert.False(t, s.NoOrientedItems, "no_item_rotation must force NoOrientedItems false regardless of per-item Oriented flags")

	params2 := DefaultParameters()
	params2.NoItemRotation = false
	s2 := NewBranchingScheme(inst, params2)
	assert.True(t, s2.NoOrientedItems, "with rotation allowed and no item individually oriented, NoOrientedItems must be true")
}

func TestNoOrientedItemsFalseWhenAnyItemOriented(t *testing.T) {
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 1000, H: 500, Profit: 1000, Copies: 1, Oriented: true},
	}
	bins := []instance.Bin{{W: 3000, H: 3000, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)

	params := DefaultParameters()
	params.NoItemRotation = false
	s := NewBranchingScheme(inst, params)
	assert.False(t, s.NoOrientedItems)
}

func TestTwoStagedSwapsFirstStageOrientation(t *testing.T) {
	inst := singleItemInstance(t)

	params := DefaultParameters()
	params.CutType1 = TwoStaged
	params.FirstStageOrientation = OrientHorizontal
	s := NewBranchingScheme(inst, params)
	assert.Equal(t, OrientVertical, s.Params.FirstStageOrientation, "two-staged cuts must swap Horizontal to Vertical")

	params2 := DefaultParameters()
	params2.CutType1 = TwoStaged
	params2.FirstStageOrientation = OrientVertical
	s2 := NewBranchingScheme(inst, params2)
	assert.Equal(t, OrientHorizontal, s2.Params.FirstStageOrientation, "two-staged cuts must swap Vertical to Horizontal")
}

func TestTwoStagedLeavesOrientAnyUnchanged(t *testing.T) {
	inst := singleItemInstance(t)

	params := DefaultParameters()
	params.CutType1 = TwoStaged
	params.FirstStageOrientation = OrientAny
	s := NewBranchingScheme(inst, params)
	assert.Equal(t, OrientAny, s.Params.FirstStageOrientation)
}

func TestThreeStagedLeavesFirstStageOrientationUnchanged(t *testing.T) {
	inst := singleItemInstance(t)

	params := DefaultParameters()
	params.CutType1 = ThreeStaged
	params.FirstStageOrientation = OrientHorizontal
	s := NewBranchingScheme(inst, params)
	assert.Equal(t, OrientHorizontal, s.Params.FirstStageOrientation)
}

func TestOrientedReflectsSchemeAndItemFlags(t *testing.T) {
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 1000, H: 500, Profit: 1000, Copies: 1, Oriented: true},
		{Id: 1, Stack: 1, Pos: 0, W: 500, H: 500, Profit: 500, Copies: 1},
	}
	bins := []instance.Bin{{W: 3000, H: 3000, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)

	params := DefaultParameters()
	params.NoItemRotation = false
	s := NewBranchingScheme(inst, params)
	assert.True(t, s.Oriented(0), "item 0 is individually marked Oriented")
	assert.False(t, s.Oriented(1), "item 1 has no rotation restriction and rotation is allowed scheme-wide")

	params.NoItemRotation = true
	s2 := NewBranchingScheme(inst, params)
	assert.True(t, s2.Oriented(1), "no_item_rotation forces every item oriented regardless of its own flag")
}

func TestRootHasNoBinsOrItemsPlaced(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	assert.Equal(t, instance.BinPos(0), root.BinNumber())
	assert.Equal(t, instance.Profit(0), root.Profit())
	assert.False(t, root.Full())
}

func TestChildAppliesInsertion(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	children := root.Children()
	require.NotEmpty(t, children)

	child := s.Child(root, children[0])
	assert.NotNil(t, child)
	assert.True(t, child.BinNumber() > root.BinNumber() || child.Profit() > root.Profit(),
		"applying an insertion must move the node forward from its father")
}
