package solver

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallKnapsackScheme(t *testing.T, objective Objective) *BranchingScheme {
	t.Helper()
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 1000, H: 1000, Profit: 10, Copies: 1, Oriented: true},
	}
	bins := []instance.Bin{{W: 1000, H: 1000, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)
	params := DefaultParameters()
	params.Objective = objective
	return NewBranchingScheme(inst, params)
}

func TestBoundKnapsackPrunesOnceIncumbentMatchesUbkp(t *testing.T) {
	s := smallKnapsackScheme(t, Knapsack)
	root := s.Root()
	children := root.Children()
	require.Len(t, children, 1)
	full := s.Child(root, children[0])
	require.True(t, full.Profit() > 0)

	// root's ubkp equals the only item's profit; once an incumbent has
	// already banked that much, root can be pruned.
	assert.True(t, root.Bound(full))
	// No incumbent yet: root's ubkp exceeds a zero floor, so it stays open.
	assert.False(t, root.Bound(nil))
}

func TestBoundDefaultPrunesTiedProfitNoBetterWaste(t *testing.T) {
	s := smallKnapsackScheme(t, Default)
	root := s.Root()
	children := root.Children()
	require.Len(t, children, 1)
	full := s.Child(root, children[0])

	// Same node compared to itself as incumbent: ubkp matches incumbent
	// profit exactly, so the tie-break falls to waste >= waste (true),
	// which means it is correctly pruned against itself.
	assert.True(t, full.Bound(full))
}

func TestBoundBinPackingRequiresFullIncumbent(t *testing.T) {
	s := smallKnapsackScheme(t, BinPacking)
	root := s.Root()
	assert.False(t, root.Bound(nil))
	assert.False(t, root.Bound(root))
}
