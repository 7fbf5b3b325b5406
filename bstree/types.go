package bstree

import (
	"cmp"
	"errors"
)

// Sentinel errors for traversal inputs.
var (
	// ErrDuplicateValue indicates the traversal contains a repeated value;
	// reconstruction is only defined for unique-valued nodes.
	ErrDuplicateValue = errors.New("bstree: traversal values must be unique")

	// ErrNotPreorder indicates the sequence is not the pre-order
	// traversal of any binary search tree.
	ErrNotPreorder = errors.New("bstree: sequence is not a BST pre-order traversal")

	// ErrTraversalMismatch indicates the pre-order and in-order inputs
	// disagree (different lengths or different value sets).
	ErrTraversalMismatch = errors.New("bstree: pre-order and in-order traversals are inconsistent")
)

// Node is one vertex of a binary tree. A nil *Node is the empty tree.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}
