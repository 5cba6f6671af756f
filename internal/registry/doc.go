// Package registry provides the central "glue" for the module system.
//
// The Registry is the process-wide table mapping face and imp labels to
// their self-describing descriptors, plus the founder function registered
// for each imp. The two namespaces are independent: a face label and an imp
// label never collide with each other.
//
// The registry has a strict two-phase lifecycle. During a single-writer
// initialization phase, each participating module's Register entrypoint is
// invoked (transitively, following the module's declared requirements) and
// populates the registry inside an ambient morph.Context, so conflicting
// registrations accumulate as defects instead of aborting startup. After
// Freeze the registry is read-only; any number of resolution passes may then
// read it concurrently without synchronization.
package registry
