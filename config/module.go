package config

import (
	"github.com/reusee/dscope"

	"github.com/ava12/sdl/internal/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
