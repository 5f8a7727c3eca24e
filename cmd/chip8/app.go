package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"

	"github.com/Tytraman/CHIP-8-Emulator/audio"
	"github.com/Tytraman/CHIP-8-Emulator/chip8"
	"github.com/Tytraman/CHIP-8-Emulator/render"
)

// keyMap binds the left-hand block of a QWERTY keyboard to the 16-key
// hexadecimal keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[glfw.Key]byte{
	glfw.Key1: 0x1, glfw.Key2: 0x2, glfw.Key3: 0x3, glfw.Key4: 0xC,
	glfw.KeyQ: 0x4, glfw.KeyW: 0x5, glfw.KeyE: 0x6, glfw.KeyR: 0xD,
	glfw.KeyA: 0x7, glfw.KeyS: 0x8, glfw.KeyD: 0x9, glfw.KeyF: 0xE,
	glfw.KeyZ: 0xA, glfw.KeyX: 0x0, glfw.KeyC: 0xB, glfw.KeyV: 0xF,
}

// App defines application context.
type App struct {
	config       *Config
	logger       *log.Logger
	window       *glfw.Window   // OpenGL/GLFW context.
	machine      *chip8.Machine // Interpreter with program to be run.
	clock        *chip8.Clock   // Cycle and timer scheduler.
	renderer     *render.Renderer
	beeper       *audio.Beeper
	toneActive   bool      // Last tone state, to detect sound timer edges.
	faulted      bool      // Execution stopped on a machine fault.
	lastRendered time.Time // Last time a frame was rendered.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config, logger *log.Logger) *App {
	var a App
	a.config = config
	a.logger = logger

	mcfg := chip8.Config{Quirks: config.Quirks}
	if config.Trace {
		mcfg.Trace = a.printTrace
	}

	a.machine = chip8.New(mcfg)
	a.clock = chip8.NewClock(a.machine, config.CycleRate)
	a.renderer = render.New()
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.loadROM(); err != nil {
		return err
	}

	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	if err := a.renderer.Init(); err != nil {
		return err
	}

	beeper, err := audio.NewBeeper()
	if err != nil {
		// Keep running without sound on machines with no audio device.
		a.logger.Error("audio unavailable", log.Err(err))
	} else {
		a.beeper = beeper
	}

	a.logger.Info(Version())
	a.logger.Info("running", log.String("rom", a.config.ROM))

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	if !a.faulted {
		if err := a.clock.Tick(time.Now()); err != nil {
			a.faulted = true
			a.logger.Error("execution fault", log.Err(err))

			var fault *chip8.Fault
			if errors.As(err, &fault) {
				fmt.Println(fault.Registers.Dump())
			}
		}
	}

	a.updateTone()

	// Periodically render display contents.
	if time.Since(a.lastRendered) >= time.Second/60 {
		a.lastRendered = time.Now()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		a.renderer.Draw(a.machine.Display())
		a.window.SwapBuffers()
	}

	glfw.PollEvents()
}

// updateTone starts or stops the beeper when the sound timer state changes.
func (a *App) updateTone() {
	active := a.machine.ToneActive()
	if active == a.toneActive {
		return
	}
	a.toneActive = active

	if a.beeper == nil {
		return
	}

	if active {
		if err := a.beeper.Start(); err != nil {
			a.logger.Error("failed to start tone", log.Err(err))
		}
	} else {
		a.beeper.Stop()
	}
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if a.beeper != nil {
		a.beeper.Close()
		a.beeper = nil
	}

	a.renderer.Close()

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}

	if key == glfw.KeyEscape && action == glfw.Press {
		a.window.SetShouldClose(true)
		return
	}

	k, ok := keyMap[key]
	if !ok {
		return
	}

	if err := a.machine.SetKey(k, action == glfw.Press); err != nil {
		a.logger.Error("key update failed", log.Err(err))
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := chip8.DisplayWidth * a.config.ScaleFactor
	height := chip8.DisplayHeight * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	title := fmt.Sprintf("%s - %s", AppName, filepath.Base(a.config.ROM))

	a.window, err = glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// loadROM loads the configured ROM file into the machine.
func (a *App) loadROM() error {
	rom, err := os.ReadFile(a.config.ROM)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", a.config.ROM)
	}

	return a.machine.Load(rom)
}

// printTrace prints instruction trace data.
func (a *App) printTrace(i chip8.Instruction) {
	fmt.Printf("%04X  %s\n", i.PC, i)
}
