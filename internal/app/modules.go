package app

import (
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/modules/boarding"
	"github.com/vk/advent2020/modules/customs"
	"github.com/vk/advent2020/modules/expense"
	"github.com/vk/advent2020/modules/haversacks"
	"github.com/vk/advent2020/modules/passport"
	"github.com/vk/advent2020/modules/password"
	"github.com/vk/advent2020/modules/toboggan"
)

// coreModules is the definitive list of all puzzles that are compiled into
// the advent2020 binary.
var coreModules = []registry.Module{
	&expense.Module{},
	&password.Module{},
	&toboggan.Module{},
	&passport.Module{},
	&boarding.Module{},
	&customs.Module{},
	&haversacks.Module{},
}
