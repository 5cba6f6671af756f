// Package resolver implements the recursive algorithm that turns a charter
// into a clan: a constructed component instance together with the tree of
// septs built for its roles.
//
// Resolution walks the charter top-down. At each node it validates the
// charter's shape, looks up the requested imp, verifies the imp implements
// the face the slot expects, recurses into the imp's declared roles in
// declaration order, and flags supplied roles the imp does not declare.
// Every defect goes into the pass's morph.Context; the first one degrades
// the pass so no further founder runs, but checking continues so a single
// pass reports every independent mistake in a large charter. A pass either
// produces a complete clan with no recorded defects, or no clan and the
// ordered defect list.
//
// The engine only reads a frozen registry and keeps all per-pass state in
// the pass's own context, so concurrent resolutions need no locking.
package resolver
