package app

import (
	"github.com/vk/crossdexgo/implementors/parameterised"
	"github.com/vk/crossdexgo/implementors/policy"
	"github.com/vk/crossdexgo/implementors/projection"
	"github.com/vk/crossdexgo/implementors/qfunction"
	"github.com/vk/crossdexgo/implementors/serialize"
	"github.com/vk/crossdexgo/implementors/space"
	"github.com/vk/crossdexgo/internal/registry"
)

// coreTables is the definitive list of all implementor pages that are
// compiled into the crossdexgo binary.
var coreTables = []registry.Module{
	&space.Module{},
	&policy.Module{},
	&projection.Module{},
	&qfunction.Module{},
	&parameterised.Module{},
	&serialize.Module{},
}
