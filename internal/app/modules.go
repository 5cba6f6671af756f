package app

import (
	"github.com/deansher/morphics-v0.1/internal/registry"
	"github.com/deansher/morphics-v0.1/modules/itemorder"
	"github.com/deansher/morphics-v0.1/modules/number"
)

// coreModules is the definitive list of top-level modules compiled into the
// binary. Modules they require are installed transitively.
var coreModules = []registry.Module{
	&number.Module{},
	&itemorder.Module{},
}
