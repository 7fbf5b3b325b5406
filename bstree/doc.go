// Package bstree reconstructs binary trees from their traversals.
//
// 🚀 What is bstree?
//
//	Two reconstruction routes over unique-valued nodes:
//	  • FromPreorder   — a binary SEARCH tree is fully determined by
//	    its pre-order traversal alone; rebuild it by bound-checked
//	    descent
//	  • FromTraversals — a GENERAL binary tree needs pre-order plus
//	    in-order; rebuild it by pivot splitting
//	Plus Preorder/Inorder emitters for round-trip verification.
//
// ✨ Key properties:
//   - Generic over cmp.Ordered element types
//   - Inputs validated up front: duplicates and inconsistent
//     traversals surface as sentinel errors, never as a wrong tree
//   - Empty input reconstructs the empty tree (nil root), not an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/bstree"
//
//	root, err := bstree.FromPreorder([]int{8, 5, 1, 7, 10, 12})
//	fmt.Println(bstree.Inorder(root)) // [1 5 7 8 10 12]
//
// Complexity: FromPreorder is O(n) (each value is inspected once
// during the descent); FromTraversals is O(n) with an O(n) index map.
// This package shares no state with the enumeration or recurrence
// packages.
package bstree
