package ecnode

import "errors"

// ErrInvalidConstraint is the InvalidConstraint error kind of spec §7: a
// constraint tree's leaf set disagrees with its vertex's neighbour set.
// Raised at the validation entry points of embed_ec / embed_ec_with_crossings
// (package ecembed), not here — Validate only detects the condition.
var ErrInvalidConstraint = errors.New("ecnode: constraint tree leaves do not match vertex neighbors")
