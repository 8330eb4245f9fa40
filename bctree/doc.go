// Package bctree is the external collaborator of spec §4.4: decomposition
// of a graph into biconnected components ("BC-tree"). Out of scope as a
// specified component (spec §1), implemented here as a leaf primitive
// consumed by package spqr, since no such package ships in the standard
// library.
//
// Uses Tarjan's DFS low-link algorithm, grounded on the same recursive,
// explicit-stack traversal idiom as lvlath's dfs package (deterministic
// neighbor order, no goroutines).
package bctree
