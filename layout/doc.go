// Package layout implements spec §4.12: given a planar embedding of a
// gadget graph and a per-vertex map of which port each incident edge binds
// to, it computes a visibility representation (package visibility) sized
// from each vertex's routed gadget region (package router), places every
// gadget at its bar's position, routes each gadget's internal wiring, and
// threads a vertical inter-gadget wire (flanked by barriers) between every
// edge's two endpoints — finally translating the whole layout so its
// bounding box starts at (0, 0).
package layout
