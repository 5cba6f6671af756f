// Package charter defines the declarative configuration tree the engine
// consumes, and the shape validation applied to it at parse time.
//
// A charter is a JSON-shaped value: an object carrying an "imp" label, an
// optional "roles" object of nested charters, and an optional opaque "data"
// value passed untouched to the imp's founder. A bare scalar or array is
// also a legal charter for faces whose resolution policy permits it.
//
// Charter values are carried as cty.Value so the engine stays agnostic to
// how the tree was authored: the JSON codec goes through cty/json, and the
// HCL loader evaluates attributes to the same value space.
package charter
