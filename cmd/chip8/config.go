package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Tytraman/CHIP-8-Emulator/chip8"
)

// Config defines program configuration.
type Config struct {
	ROM         string       // Path to the ROM file to load.
	CycleRate   int          // Instruction cycles executed per second.
	ScaleFactor int          // Amount by which each pixel is scaled (virtual resolution)
	Fullscreen  bool         // Run in fullscreen?
	Trace       bool         // Print instruction trace data?
	Quirks      chip8.Quirks // Optional interpreter behavior toggles.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.CycleRate = chip8.DefaultCycleRate
	c.ScaleFactor = 10
	c.Fullscreen = false
	c.Trace = false

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.CycleRate, "clock", c.CycleRate, "Instruction cycles executed per second.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the display.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")
	flag.BoolVar(&c.Trace, "trace", c.Trace, "Print executed instructions to stdout.")
	flag.BoolVar(&c.Quirks.ShiftVY, "quirk-shift-vy", false, "Shift instructions read Vy instead of shifting Vx in place.")
	flag.BoolVar(&c.Quirks.JumpVX, "quirk-jump-vx", false, "Jump with offset uses Vx instead of V0.")
	flag.BoolVar(&c.Quirks.IncrementI, "quirk-increment-i", false, "Register save/load instructions advance I.")
	flag.BoolVar(&c.Quirks.IndexOverflowVF, "quirk-index-overflow", false, "Adding to I sets VF when the result leaves addressable memory.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	return &c
}
