// Package visibility is the external collaborator of spec §4.12: given a
// planar embedding and per-vertex minimum width/height, it assigns each
// vertex a horizontal bar (Y, MinX, MaxX) and each edge an x-coordinate.
//
// The source grounds this on a planar st-numbering-like DFS over the
// embedding's faces (teacher idiom: `dfs/topological.go`'s recursive
// post-order numbering, by the time of this transformation already adapted
// away — see DESIGN.md). This package reconstructs that idiom directly
// (recursive DFS, explicit visited set, deterministic neighbour order) but
// simplifies the two-pass st-numbering/face-sweep algorithm to a single
// deterministic DFS traversal: vertex Y order and edge X order both follow
// DFS visitation order rather than a true planar st-numbering. This is
// sufficient to produce a self-consistent (gap-respecting, deterministic)
// bar assignment for package layout to build on, but does not guarantee the
// stronger "every edge's x lies strictly between its endpoints' bars with no
// other vertex crossing it" property a literal visibility representation
// gives a 2-connected planar st-graph.
package visibility
