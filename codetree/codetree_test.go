package codetree_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mororo18/compadre/codetree"
	"github.com/mororo18/compadre/symbol"
)

func buildBalancedTree() *codetree.CodeTree[byte] {
	t := codetree.New[byte]()
	root := t.PushBranch(4)
	left := t.PushLeaf(symbol.New[byte, int]('A'), 2)
	right := t.PushLeaf(symbol.New[byte, int]('B'), 2)
	t.AddLeftChild(root, left)
	t.AddRightChild(root, right)
	return t
}

func TestCodeMapBalancedTree(t *testing.T) {
	tree := buildBalancedTree()
	code := tree.CodeMap()

	cwA, ok := code.Get(symbol.New[byte, int]('A'))
	require.True(t, ok)
	assert.Equal(t, 1, cwA.Len())
	assert.Equal(t, uint32(0), cwA.Value())

	cwB, ok := code.Get(symbol.New[byte, int]('B'))
	require.True(t, ok)
	assert.Equal(t, 1, cwB.Len())
	assert.Equal(t, uint32(1), cwB.Value())
}

func TestCodeMapSingleLeafTree(t *testing.T) {
	tree := codetree.NewLeaf(symbol.New[byte, int]('A'), 5)
	code := tree.CodeMap()

	cw, ok := code.Get(symbol.New[byte, int]('A'))
	require.True(t, ok)
	assert.Equal(t, 0, cw.Len())
}

func TestDecodeBalancedTree(t *testing.T) {
	tree := buildBalancedTree()
	bits := []int{0}
	i := 0
	sym, err := tree.Decode(func() (int, error) {
		b := bits[i]
		i++
		return b, nil
	})
	require.NoError(t, err)
	assert.Equal(t, byte('A'), sym.MustInner())
}

func TestDecodeSingleLeafTreeCallsNoBits(t *testing.T) {
	tree := codetree.NewLeaf(symbol.New[byte, int]('A'), 5)
	sym, err := tree.Decode(func() (int, error) {
		t.Fatal("nextBit should not be called for a single-node tree")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, byte('A'), sym.MustInner())
}

func TestDecodeSurfacesNextBitError(t *testing.T) {
	tree := buildBalancedTree()
	wantErr := io.ErrUnexpectedEOF
	_, err := tree.Decode(func() (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestDecodeDesyncOnMissingChild(t *testing.T) {
	// A tree with only a left child: requesting the right child desyncs.
	tree := codetree.New[byte]()
	root := tree.PushBranch(1)
	left := tree.PushLeaf(symbol.New[byte, int]('A'), 1)
	tree.AddLeftChild(root, left)

	_, err := tree.Decode(func() (int, error) {
		return codetree.RightBit, nil
	})
	assert.True(t, errors.Is(err, codetree.ErrDesync))
}

func TestAppendTreeReindexesAndKeepsRootAtZero(t *testing.T) {
	left := buildBalancedTree()
	right := codetree.NewLeaf(symbol.New[byte, int]('C'), 1)

	out := codetree.New[byte]()
	newRoot := out.PushBranch(left.Root().Weight() + right.Root().Weight())
	leftRoot := out.AppendTree(left)
	rightRoot := out.AppendTree(right)
	out.AddLeftChild(newRoot, leftRoot)
	out.AddRightChild(newRoot, rightRoot)

	assert.Equal(t, 0, newRoot) // pushing the branch first keeps root at index 0

	code := out.CodeMap()
	cwA, ok := code.Get(symbol.New[byte, int]('A'))
	require.True(t, ok)
	assert.Equal(t, 2, cwA.Len()) // left-subtree root, then A's own left/right choice

	cwC, ok := code.Get(symbol.New[byte, int]('C'))
	require.True(t, ok)
	assert.Equal(t, 1, cwC.Len())
}

func TestRootPanicsOnEmptyTree(t *testing.T) {
	tree := codetree.New[byte]()
	assert.Panics(t, func() { tree.Root() })
}

func TestSymbolPanicsOnBranch(t *testing.T) {
	tree := buildBalancedTree()
	assert.Panics(t, func() { tree.Root().Symbol() })
}
