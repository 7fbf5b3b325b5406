package bstree

import "cmp"

// FromPreorder — rebuild a binary search tree from its pre-order
// traversal.
//
// Description:
//
//	A BST over unique values is fully determined by its pre-order
//	sequence: the first value is the root, the following run of
//	smaller values is the left subtree, the rest the right subtree.
//
// Algorithm Outline (bound-checked descent):
//  1. Keep a cursor into pre and an open (lo, hi) bound per subtree.
//  2. A value inside the bound becomes the subtree root and consumes
//     one cursor step; left recurses with (lo, value), right with
//     (value, hi).
//  3. A value outside the bound closes the current subtree.
//  4. If any values remain unconsumed at the top, no BST has this
//     pre-order — ErrNotPreorder.
//
// Errors:
//   - ErrDuplicateValue — repeated value in pre.
//   - ErrNotPreorder    — sequence cannot be a BST pre-order.
//
// Edge cases: empty input yields the empty tree (nil, nil error).
//
// Complexity: O(n) time, O(h) stack for tree height h.
func FromPreorder[T cmp.Ordered](pre []T) (*Node[T], error) {
	if len(pre) == 0 {
		return nil, nil
	}
	if err := checkUnique(pre); err != nil {
		return nil, err
	}

	idx := 0
	var build func(lo, hi *T) *Node[T]
	build = func(lo, hi *T) *Node[T] {
		if idx == len(pre) {
			return nil
		}
		v := pre[idx]
		if lo != nil && v < *lo {
			return nil
		}
		if hi != nil && v > *hi {
			return nil
		}
		idx++
		n := &Node[T]{Value: v}
		n.Left = build(lo, &v)
		n.Right = build(&v, hi)

		return n
	}

	root := build(nil, nil)
	if idx != len(pre) {
		return nil, ErrNotPreorder
	}

	return root, nil
}

// FromTraversals — rebuild a general binary tree from its pre-order
// and in-order traversals.
//
// Algorithm Outline (pivot splitting):
//  1. The first pre-order value is the root.
//  2. Locate it in the in-order sequence; everything to its left is
//     the left subtree's in-order, to its right the right subtree's.
//  3. The next len(left) pre-order values are the left subtree's
//     pre-order; recurse on both halves.
//
// Errors:
//   - ErrDuplicateValue    — repeated value in either traversal.
//   - ErrTraversalMismatch — different lengths, or the two sequences
//     do not describe the same tree.
//
// Edge cases: two empty inputs yield the empty tree.
//
// Complexity: O(n) time with an O(n) value→position map.
func FromTraversals[T cmp.Ordered](pre, in []T) (*Node[T], error) {
	if len(pre) != len(in) {
		return nil, ErrTraversalMismatch
	}
	if len(pre) == 0 {
		return nil, nil
	}
	if err := checkUnique(pre); err != nil {
		return nil, err
	}
	if err := checkUnique(in); err != nil {
		return nil, err
	}

	pos := make(map[T]int, len(in))
	for i, v := range in {
		pos[v] = i
	}

	var build func(preLo, preHi, inLo, inHi int) (*Node[T], error)
	build = func(preLo, preHi, inLo, inHi int) (*Node[T], error) {
		if preLo > preHi {
			return nil, nil
		}
		root := pre[preLo]
		p, ok := pos[root]
		if !ok || p < inLo || p > inHi {
			return nil, ErrTraversalMismatch
		}
		leftSize := p - inLo

		n := &Node[T]{Value: root}
		var err error
		if n.Left, err = build(preLo+1, preLo+leftSize, inLo, p-1); err != nil {
			return nil, err
		}
		if n.Right, err = build(preLo+leftSize+1, preHi, p+1, inHi); err != nil {
			return nil, err
		}

		return n, nil
	}

	return build(0, len(pre)-1, 0, len(in)-1)
}

// Preorder emits root-left-right order; nil yields an empty slice.
func Preorder[T cmp.Ordered](root *Node[T]) []T {
	out := make([]T, 0)
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.Value)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return out
}

// Inorder emits left-root-right order; for a BST this is sorted order.
func Inorder[T cmp.Ordered](root *Node[T]) []T {
	out := make([]T, 0)
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(root)

	return out
}

// checkUnique rejects repeated values.
func checkUnique[T cmp.Ordered](s []T) error {
	seen := make(map[T]bool, len(s))
	for _, v := range s {
		if seen[v] {
			return ErrDuplicateValue
		}
		seen[v] = true
	}

	return nil
}
