// Package layer compiles binding trees into Karabiner rules.
//
// A Prefix key arms a variable while held. Each top-level Layer bound under
// the prefix becomes a sub-layer with its own state variable, and sibling
// sub-layers exclude each other: a sub-layer only activates while every
// sibling variable is 0. Children of a sub-layer fire only while its
// variable is 1. Nested layers recurse with the same scheme.
//
// Compilation is pure and never fails. Validate reports authoring errors
// before compilation.
package layer
