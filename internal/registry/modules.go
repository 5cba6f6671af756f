package registry

import (
	"context"

	"github.com/deansher/morphics-v0.1/internal/ctxlog"
	"github.com/deansher/morphics-v0.1/internal/morph"
)

// Module is the interface that all registering modules must implement. A
// module's Register entrypoint performs its own face/imp registrations;
// modules it depends on are declared via Requires and installed first, so a
// caller only names its top-level modules.
type Module interface {
	// Name identifies the module for install deduplication; conventionally
	// the module's label prefix, e.g. "Morphics.Number".
	Name() string

	// Requires lists the modules whose registrations this module depends on.
	Requires() []Module

	// Register performs this module's registrations against the registry.
	Register(mc *morph.Context, r *Registry)
}

// Install invokes each module's Register entrypoint, requirements first.
// A seen-set keyed by module name makes installation idempotent, so diamond
// dependency shapes register each module exactly once.
func (r *Registry) Install(ctx context.Context, mc *morph.Context, modules ...Module) {
	for _, mod := range modules {
		r.installOne(ctx, mc, mod)
	}
}

func (r *Registry) installOne(ctx context.Context, mc *morph.Context, mod Module) {
	if r.installed[mod.Name()] {
		return
	}
	r.installed[mod.Name()] = true
	for _, dep := range mod.Requires() {
		r.installOne(ctx, mc, dep)
	}
	ctxlog.FromContext(ctx).Debug("Registering module.", "module", mod.Name())
	mod.Register(mc, r)
}
