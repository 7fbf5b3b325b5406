package bstree_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/combinat/bstree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromPreorder_RoundTrip rebuilds a BST and checks both traversal
// emitters: pre-order must round-trip, in-order must be sorted.
func TestFromPreorder_RoundTrip(t *testing.T) {
	pre := []int{8, 5, 1, 7, 10, 12}
	root, err := bstree.FromPreorder(pre)
	require.NoError(t, err)

	assert.Equal(t, pre, bstree.Preorder(root), "pre-order must round-trip")

	in := bstree.Inorder(root)
	assert.True(t, sort.IntsAreSorted(in), "BST in-order must be sorted")
	assert.ElementsMatch(t, pre, in, "same value set")
}

// TestFromPreorder_Shapes covers degenerate shapes: left chain, right
// chain and a single node.
func TestFromPreorder_Shapes(t *testing.T) {
	left, err := bstree.FromPreorder([]int{5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, bstree.Inorder(left))

	right, err := bstree.FromPreorder([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, bstree.Preorder(right))
	assert.Nil(t, right.Left, "ascending pre-order builds a right chain")

	single, err := bstree.FromPreorder([]int{42})
	require.NoError(t, err)
	require.NotNil(t, single)
	assert.Equal(t, 42, single.Value)
	assert.Nil(t, single.Left)
	assert.Nil(t, single.Right)
}

// TestFromPreorder_Empty yields the empty tree without error.
func TestFromPreorder_Empty(t *testing.T) {
	root, err := bstree.FromPreorder([]int{})
	require.NoError(t, err)
	assert.Nil(t, root)
	assert.Empty(t, bstree.Preorder(root))
}

// TestFromPreorder_Duplicate rejects repeated values.
func TestFromPreorder_Duplicate(t *testing.T) {
	_, err := bstree.FromPreorder([]int{3, 1, 3})
	assert.ErrorIs(t, err, bstree.ErrDuplicateValue)
}

// TestFromPreorder_NotAPreorder rejects a sequence no BST produces.
func TestFromPreorder_NotAPreorder(t *testing.T) {
	_, err := bstree.FromPreorder([]int{2, 3, 1})
	assert.ErrorIs(t, err, bstree.ErrNotPreorder, "1 cannot follow the right subtree of 2")
}

// TestFromTraversals_GeneralTree rebuilds a non-BST shape that
// pre-order alone could not determine.
func TestFromTraversals_GeneralTree(t *testing.T) {
	//	    3
	//	   / \
	//	  9  20
	//	     / \
	//	    15  7
	pre := []int{3, 9, 20, 15, 7}
	in := []int{9, 3, 15, 20, 7}

	root, err := bstree.FromTraversals(pre, in)
	require.NoError(t, err)
	assert.Equal(t, pre, bstree.Preorder(root))
	assert.Equal(t, in, bstree.Inorder(root))

	require.NotNil(t, root.Right)
	assert.Equal(t, 20, root.Right.Value)
	assert.Equal(t, 15, root.Right.Left.Value)
	assert.Equal(t, 7, root.Right.Right.Value)
}

// TestFromTraversals_AgreesWithBSTRoute cross-checks the two
// reconstruction routes on a BST input.
func TestFromTraversals_AgreesWithBSTRoute(t *testing.T) {
	pre := []int{8, 5, 1, 7, 10, 12}
	viaBounds, err := bstree.FromPreorder(pre)
	require.NoError(t, err)

	viaSplit, err := bstree.FromTraversals(pre, bstree.Inorder(viaBounds))
	require.NoError(t, err)
	assert.Equal(t, bstree.Preorder(viaBounds), bstree.Preorder(viaSplit))
	assert.Equal(t, bstree.Inorder(viaBounds), bstree.Inorder(viaSplit))
}

// TestFromTraversals_Mismatch rejects inconsistent inputs.
func TestFromTraversals_Mismatch(t *testing.T) {
	_, err := bstree.FromTraversals([]int{1, 2}, []int{1, 2, 3})
	assert.ErrorIs(t, err, bstree.ErrTraversalMismatch, "length mismatch")

	_, err = bstree.FromTraversals([]int{1, 2}, []int{1, 3})
	assert.ErrorIs(t, err, bstree.ErrTraversalMismatch, "different value sets")
}

// TestFromTraversals_Duplicate rejects repeated values in either input.
func TestFromTraversals_Duplicate(t *testing.T) {
	_, err := bstree.FromTraversals([]int{1, 1}, []int{1, 2})
	assert.ErrorIs(t, err, bstree.ErrDuplicateValue)

	_, err = bstree.FromTraversals([]int{1, 2}, []int{2, 2})
	assert.ErrorIs(t, err, bstree.ErrDuplicateValue)
}

// TestFromTraversals_Strings verifies the generic bound covers any
// ordered element type.
func TestFromTraversals_Strings(t *testing.T) {
	pre := []string{"m", "c", "a", "x"}
	in := []string{"a", "c", "m", "x"}
	root, err := bstree.FromTraversals(pre, in)
	require.NoError(t, err)
	assert.Equal(t, in, bstree.Inorder(root))
}
