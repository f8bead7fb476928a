package solver

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootNodeIsEmpty(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	assert.Equal(t, instance.ItemPos(0), root.ItemNumber())
	assert.Equal(t, instance.BinPos(0), root.BinNumber())
	assert.False(t, root.Full())
	assert.Nil(t, root.Father())
}

func TestChildNodeAccumulatesItemAndProfit(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	children := root.Children()
	require.NotEmpty(t, children)

	child := s.Child(root, children[0])
	assert.Equal(t, root, child.Father())
	assert.Equal(t, root.ItemNumber()+instance.ItemPos(1), child.ItemNumber())
	assert.True(t, child.Profit() > root.Profit())
	assert.Equal(t, instance.BinPos(1), child.BinNumber())
}

func TestLastBinOrientationFollowsNewBinDepth(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	assert.Equal(t, instance.Vertical, root.LastBinOrientation(DepthNewBinVertical))
	assert.Equal(t, instance.Horizontal, root.LastBinOrientation(DepthNewBinHorizontal))
}

func TestX3PrevAtNewBinIsZero(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	assert.Equal(t, instance.Length(0), root.X3PrevAt(DepthNewBinVertical))
	assert.Equal(t, instance.Length(0), root.Y2PrevAt(DepthNewBinVertical))
}
