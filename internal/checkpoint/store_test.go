package checkpoint

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/rectguillotine/solver/internal/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInstance(t *testing.T) *instance.Instance {
	t.Helper()
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 500, H: 1000, Profit: 500000, Copies: 1, Oriented: true},
	}
	bins := []instance.Bin{{W: 6000, H: 3210, Copies: 1}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)
	return inst
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenAt(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadMissingCheckpointReturnsNotFound(t *testing.T) {
	store := openTestStore(t)
	inst := sampleInstance(t)

	run, found, err := store.Load(inst)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, run)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store := openTestStore(t)
	inst := sampleInstance(t)

	run := Run{
		NodesExplored: 42,
		Solution: &solution.Solution{
			BinsUsed: 1, ItemsPlaced: 1, Profit: 500000, Full: true,
			Items: []solution.PlacedItem{{ItemId: 0, Bin: 0, OW: 500, OH: 1000}},
		},
	}
	require.NoError(t, store.Save(inst, run))

	got, found, err := store.Load(inst)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(42), got.NodesExplored)
	assert.Equal(t, instance.Profit(500000), got.Solution.Profit)
	require.Len(t, got.Solution.Items, 1)
}

func TestDifferentInstancesHashDifferently(t *testing.T) {
	instA := sampleInstance(t)
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 400, H: 900, Profit: 400000, Copies: 1, Oriented: true},
	}
	instB, err := instance.New(items, []instance.Bin{{W: 6000, H: 3210, Copies: 1}})
	require.NoError(t, err)

	assert.NotEqual(t, instanceKey(instA), instanceKey(instB))
}
