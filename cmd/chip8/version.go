package main

import (
	"fmt"

	"github.com/retroenv/retrogolib/buildinfo"
)

// AppName is shown in the window title and version output.
const AppName = "chip8"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Version returns program version information.
func Version() string {
	return fmt.Sprintf("%s %s", AppName, buildinfo.Version(version, commit, date))
}
