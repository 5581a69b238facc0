package app

import (
	"github.com/vk/qualbench/internal/provider"
	"github.com/vk/qualbench/providers/absent"
	"github.com/vk/qualbench/providers/reference"
)

// coreModules is the definitive list of all providers compiled into the
// qualbench binary. Vendor submissions add their module here.
var coreModules = []provider.Module{
	&reference.Module{},
	&absent.Module{},
}
