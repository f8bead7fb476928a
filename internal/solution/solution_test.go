package solution

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleItemInstance(t *testing.T) *instance.Instance {
	t.Helper()
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 500, H: 1000, Profit: 500000, Copies: 1, Oriented: false},
	}
	bins := []instance.Bin{{W: 6000, H: 3210, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)
	return inst
}

func TestConvertSingleItemPlacement(t *testing.T) {
	inst := singleItemInstance(t)
	params := solver.DefaultParameters()
	params.SetRoadef2018()
	scheme := solver.NewBranchingScheme(inst, params)

	root := scheme.Root()
	children := root.Children()
	require.NotEmpty(t, children)

	leaf := scheme.Child(root, children[0])
	require.True(t, leaf.Full())

	sol := Convert(scheme, leaf)
	assert.Equal(t, 1, sol.BinsUsed)
	assert.Equal(t, 1, sol.ItemsPlaced)
	assert.True(t, sol.Full)
	require.Len(t, sol.Items, 1)

	placed := sol.Items[0]
	assert.Equal(t, instance.ItemTypeId(0), placed.ItemId)
	assert.Equal(t, instance.BinPos(0), placed.Bin)
	assert.Equal(t, instance.Length(0), placed.OX)
	assert.Equal(t, instance.Length(0), placed.OY)

	require.NoError(t, Check(inst, sol))
}

func TestCheckRejectsOverlappingPlacements(t *testing.T) {
	inst := singleItemInstance(t)
	sol := &Solution{
		BinsUsed:        1,
		ItemsPlaced:     2,
		BinOrientations: []instance.Orientation{instance.Vertical},
		Items: []PlacedItem{
			{ItemId: 0, Bin: 0, OX: 0, OY: 0, OW: 500, OH: 1000, Orientation: instance.Vertical},
			{ItemId: 0, Bin: 0, OX: 100, OY: 100, OW: 500, OH: 1000, Orientation: instance.Vertical},
		},
	}
	err := Check(inst, sol)
	assert.Error(t, err)
}

func TestCheckRejectsEscapingBin(t *testing.T) {
	inst := singleItemInstance(t)
	sol := &Solution{
		BinsUsed:        1,
		ItemsPlaced:     1,
		BinOrientations: []instance.Orientation{instance.Vertical},
		Items: []PlacedItem{
			{ItemId: 0, Bin: 0, OX: 5800, OY: 0, OW: 500, OH: 1000, Orientation: instance.Vertical},
		},
	}
	err := Check(inst, sol)
	assert.Error(t, err)
}

func TestPhysicalRectTransposesUnderHorizontal(t *testing.T) {
	p := PlacedItem{OX: 10, OY: 20, OW: 30, OH: 40, Orientation: instance.Horizontal}
	r := p.PhysicalRect()
	assert.Equal(t, instance.Rect{X: 20, Y: 10, W: 40, H: 30}, r)
}
