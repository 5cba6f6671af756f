// Package morph provides the error-accumulating context that registration
// and resolution operations run inside.
//
// Recoverable configuration defects are never raised as panics or returned
// as control-flow errors. Each operation records them into an ambient
// Context, which degrades to an error-check-only mode the moment the first
// defect is recorded: from then on, operations keep validating structure and
// reporting further defects, but no registry mutation happens and no founder
// is invoked. One pass over a large charter therefore reports every
// independent mistake instead of stopping at the first one.
//
// A Context is owned by exactly one registration or resolution pass and is
// never shared across concurrent passes.
package morph
