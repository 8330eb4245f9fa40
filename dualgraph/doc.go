// Package dualgraph implements spec §4.10: the dual graph of a planar
// embedding, one DualVertex per face, used by package ecembed to find a
// shortest sequence of faces to cross when an edge cannot be added directly.
package dualgraph
