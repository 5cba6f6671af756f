// Package loader reads charter documents from disk. It is a collaborator
// around the engine, not part of it: the engine only ever sees parsed
// charter.Charter trees.
//
// Two authoring formats are supported. A .json file holds the charter wire
// format directly. A .hcl file holds the same shape as top-level attributes
// (imp, roles, data) whose values are evaluated to cty and routed through
// the same shape validation as JSON, so both formats produce identical
// charters.
package loader
