package main

import (
	"runtime"

	"github.com/retroenv/retrogolib/log"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config := parseArgs()
	logger := newLogger(config.Trace)

	if err := NewApp(config, logger).Run(); err != nil {
		logger.Fatal(err.Error())
	}
}

func newLogger(trace bool) *log.Logger {
	cfg := log.DefaultConfig()
	if trace {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}
