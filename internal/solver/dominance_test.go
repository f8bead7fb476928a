package solver

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStackScheme(t *testing.T) *BranchingScheme {
	t.Helper()
	items := []instance.Item{
		{Id: 0, Stack: 0, Pos: 0, W: 1000, H: 500, Profit: 1000, Copies: 1, Oriented: true},
		{Id: 1, Stack: 0, Pos: 1, W: 500, H: 500, Profit: 500, Copies: 1, Oriented: true},
	}
	bins := []instance.Bin{{W: 6000, H: 3210, Copies: 2}}
	inst, err := instance.New(items, bins)
	require.NoError(t, err)
	params := DefaultParameters()
	params.SetRoadef2018()
	return NewBranchingScheme(inst, params)
}

func TestDominatesFrontSameBinSameStrip(t *testing.T) {
	s := twoStackScheme(t)
	f1 := Front{I: 0, O: instance.Vertical, X1Prev: 0, X3Curr: 1000, X1Curr: 1000, Y2Prev: 0, Y2Curr: 500}
	f2 := Front{I: 0, O: instance.Vertical, X1Prev: 0, X3Curr: 2000, X1Curr: 2000, Y2Prev: 0, Y2Curr: 500}
	assert.True(t, s.DominatesFront(f1, f2), "same cut position but narrower front should dominate a wider one")
}

func TestDominatesFrontDifferentOrientationNeverDominates(t *testing.T) {
	s := twoStackScheme(t)
	f1 := Front{I: 0, O: instance.Vertical}
	f2 := Front{I: 0, O: instance.Horizontal}
	assert.False(t, s.DominatesFront(f1, f2))
}

func TestDominatesFrontEarlierBinAlwaysDominates(t *testing.T) {
	s := twoStackScheme(t)
	f1 := Front{I: 0, O: instance.Vertical}
	f2 := Front{I: 1, O: instance.Vertical}
	assert.True(t, s.DominatesFront(f1, f2))
}

func TestDominatesNodeRejectsDifferentPosStack(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	children := root.Children()
	require.Len(t, children, 1)
	n1 := s.Child(root, children[0])

	// n2 has placed nothing: its posStack differs from n1's.
	n2 := root
	assert.False(t, s.DominatesNode(n1, n2))
}

func TestDominatesNodeRejectsDefectOnlyTarget(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	defectOnly := &Node{scheme: s, father: root, binNumber: 1, insertion: Insertion{J1: NoItem, J2: NoItem, Df: DepthNewBinVertical}, posStack: root.PosStackVector()}
	assert.False(t, s.DominatesNode(root, defectOnly))
}
