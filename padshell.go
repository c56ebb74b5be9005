// This file is part of Padshell.
//
// Padshell is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padshell is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padshell.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/padshell/padshell/bindings"
	"github.com/padshell/padshell/capture"
	"github.com/padshell/padshell/emulation"
	"github.com/padshell/padshell/gui/sdlwindow"
	"github.com/padshell/padshell/hid"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/modalflag"
	"github.com/padshell/padshell/prefs"
	"github.com/padshell/padshell/settings"
	"github.com/padshell/padshell/shell"
	"github.com/padshell/padshell/statsview"
	"github.com/padshell/padshell/version"
	"go.uber.org/multierr"
)

const statsviewAddress = "localhost:12600"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the default interrupt handling. used when the running mode handles
	// interrupts itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// mainSync connects the launch goroutine with the main thread. SDL and the
// main loop of the shell must run on the main thread so they are sent to it
// as functions on the service channel.
type mainSync struct {
	state   chan stateRequest
	service chan func()
}

// onMain runs the function on the main thread and waits for it to return.
func (sync *mainSync) onMain(f func() error) error {
	errc := make(chan error, 1)
	sync.service <- func() {
		errc <- f()
	}
	return <-errc
}

func init() {
	// the main goroutine stays on the main thread
	runtime.LockOSThread()
}

func main() {
	sync := &mainSync{
		state:   make(chan stateRequest),
		service: make(chan func()),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case f := <-sync.service:
			f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "BIND", "DEVICES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "BIND":
		err = bind(md, sync)

	case "DEVICES":
		err = devices(md, sync)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// environment is the state shared by the modes that open a window.
type environment struct {
	settings *settings.Settings
	prefs    *shell.Preferences
	store    *bindings.Store
	list     *bindings.List
	backend  emulation.Backend
}

// prepare parses the flags of the mode and loads the settings and the
// input configuration.
func prepare(md *modalflag.Modes) (*environment, bool, error) {
	settings.AddFlags(md.Flags())

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return nil, false, err
	}

	cfgFile, err := settings.DefaultConfigFile()
	if err != nil {
		return nil, false, err
	}

	env := &environment{}

	env.settings, err = settings.Load(md.Flags(), cfgFile)
	if err != nil {
		return nil, false, err
	}

	if env.settings.LogEcho() {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	logger.Log(logger.Allow, "padshell", version.String())

	env.backend, err = emulation.ParseBackend(env.settings.Backend())
	if err != nil {
		return nil, false, err
	}

	env.prefs = shell.NewPreferences()
	reg := prefs.NewRegistry()
	err = env.prefs.Register(reg)
	if err != nil {
		return nil, false, err
	}
	err = env.settings.Populate(reg)
	if err != nil {
		return nil, false, err
	}

	pth, err := env.settings.InputFile()
	if err != nil {
		return nil, false, err
	}
	env.store = bindings.NewStore(pth)

	configs, err := env.store.Load()
	if err != nil {
		return nil, false, err
	}
	env.list = bindings.NewList(configs...)

	return env, true, nil
}

// window creates the window and the shell and calls f with the shell. The
// function is run on the main thread and the window is destroyed when f
// returns.
func (env *environment) window(sync *mainSync, device emulation.Device, f func(sh *shell.Shell) error) error {
	return sync.onMain(func() (err error) {
		w, h := env.settings.WindowSize()
		win, err := sdlwindow.NewWindow(version.ApplicationName, w, h)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, win.Destroy())
		}()

		sh, err := shell.NewShell(win, device, env.list, shell.Options{Prefs: env.prefs})
		if err != nil {
			return err
		}

		return f(sh)
	})
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	env, ok, err := prepare(md)
	if err != nil || !ok {
		return err
	}

	if env.settings.Statsview() {
		if statsview.Available() {
			stop := statsview.Launch(statsviewAddress, os.Stdout)
			defer stop()
		} else {
			logger.Log(logger.Allow, "padshell", "statsview is not available in this build")
		}
	}

	// reload the input configuration when the file changes
	watcher, err := bindings.NewWatcher(env.store, env.list.Replace)
	if err != nil {
		logger.Log(logger.Allow, "padshell", err)
	} else {
		defer watcher.Close()
	}

	// interrupts end the shell gracefully
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	device := emulation.NewDummy(env.backend, nil)

	return env.window(sync, device, func(sh *shell.Shell) error {
		return sh.Run(ctx)
	})
}

func bind(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	player := md.AddString("player", "Player1", "player to bind")
	deviceID := md.AddString("device", "", "device to bind (see DEVICES mode). defaults to the current device")

	env, ok, err := prepare(md)
	if err != nil || !ok {
		return err
	}

	id, err := hid.ParseControllerID(*player)
	if err != nil {
		return err
	}

	var slots []bindings.Slot
	for _, a := range md.RemainingArgs() {
		s, ok := bindings.ParseSlot(a)
		if !ok {
			return fmt.Errorf("unrecognised binding: %s", a)
		}
		slots = append(slots, s)
	}
	if len(slots) == 0 {
		return fmt.Errorf("at least one binding required for %s mode", md)
	}

	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	device := emulation.NewDummy(env.backend, nil)

	var bindErr error

	err = env.window(sync, device, func(sh *shell.Shell) error {
		ctx, cancel := context.WithCancel(ctx)
		finished := make(chan struct{})

		// the editor is only used from the main loop of the shell. invoke
		// returns false if the shell ends before the function has run
		invoke := func(f func()) bool {
			ran := make(chan struct{})
			sh.Invoke(func() {
				f()
				close(ran)
			})
			select {
			case <-ran:
				return true
			case <-ctx.Done():
				return false
			}
		}

		go func() {
			defer close(finished)
			defer sh.Close()
			bindErr = bindSlots(ctx, sh, env, id, *deviceID, slots, invoke)
		}()

		err := sh.Run(ctx)
		cancel()
		<-finished

		return err
	})

	return multierr.Append(err, bindErr)
}

// bindSlots captures a new input for each slot in turn and saves the
// result.
func bindSlots(ctx context.Context, sh *shell.Shell, env *environment, id hid.ControllerID,
	deviceID string, slots []bindings.Slot, invoke func(func()) bool) error {

	ed := sh.Editor()
	results := make(chan capture.Result, 1)

	var err error
	if !invoke(func() {
		ed.Load(id)
		ed.OnCapture = func(r capture.Result) {
			select {
			case results <- r:
			default:
			}
		}
		if deviceID != "" {
			err = ed.SelectDevice(deviceID)
		}
	}) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, s := range slots {
		var started bool
		if !invoke(func() { started = ed.Capture(s) }) {
			return nil
		}
		if !started {
			return fmt.Errorf("%s cannot be bound to %s", s, ed.Device())
		}

		fmt.Printf("press input for %s\n", s)

		select {
		case r := <-results:
			if r.Cancelled {
				fmt.Printf("%s unchanged\n", s)
			} else {
				fmt.Printf("%s = %s\n", s, r.Label)
			}
		case <-ctx.Done():
			return nil
		}
	}

	if !invoke(func() { err = ed.Save() }) {
		return nil
	}
	if err != nil {
		return err
	}

	return env.store.Save(env.list.All())
}

func devices(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	return sync.onMain(func() error {
		joysticks, err := sdlwindow.ProbeJoysticks()
		if err != nil {
			return err
		}
		for _, d := range capture.Devices(joysticks) {
			fmt.Printf("%-16s %s\n", d.ID, d.Label)
		}
		return nil
	})
}
