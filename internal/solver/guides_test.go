package solver

import (
	"testing"

	"github.com/rectguillotine/solver/internal/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessGuide6OrdersByWaste(t *testing.T) {
	less := Less(6)
	n1 := &Node{waste: 10}
	n2 := &Node{waste: 20}
	assert.True(t, less(n1, n2))
	assert.False(t, less(n2, n1))
}

func TestLessGuide7OrdersByDescendingUbkp(t *testing.T) {
	s := twoStackScheme(t)
	root := s.Root()
	children := root.Children()
	require.NotEmpty(t, children)
	n1 := s.Child(root, children[0])

	less := Less(7)
	// A node compared to itself is never "less".
	assert.False(t, less(n1, n1))
}

func TestLessGuide0SortsEmptyFrontFirst(t *testing.T) {
	less := Less(0)
	empty := &Node{}
	nonEmpty := &Node{currentArea: 100, waste: 10}
	assert.True(t, less(empty, nonEmpty), "a node with zero area sorts before one with placed area")
	assert.False(t, less(nonEmpty, empty))
}

func TestLessByPosStackBreaksTies(t *testing.T) {
	n1 := &Node{posStack: []instance.ItemPos{1, 0}}
	n2 := &Node{posStack: []instance.ItemPos{2, 0}}
	assert.True(t, lessByPosStack(n1, n2))
	assert.False(t, lessByPosStack(n2, n1))
}
