package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/eiannone/keyboard"

	"elevatorcore/cabin"
	"elevatorcore/dispatcher"
)

// repl wraps a Dispatcher with the two input modes the driver supports.
// Neither mode ever calls a dispatcher method that isn't part of its
// exported API.
type repl struct {
	d   *dispatcher.Dispatcher
	out io.Writer
}

// runScripted reads newline-delimited commands until EOF or "quit".
// Rejected commands are logged and the loop continues; they are never
// fatal.
func (r *repl) runScripted(scanner *bufio.Scanner) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !r.dispatch(line) {
			return
		}
	}
}

// dispatch runs one command line and reports whether the loop should
// continue.
func (r *repl) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "quit":
		return false
	case "step":
		r.d.Step()
		fmt.Fprintln(r.out, "ok")
	case "pickup":
		r.cmdPickup(args)
	case "dropoff":
		r.cmdDropoff(args)
	case "reset":
		r.cmdReset(args)
	case "limits":
		r.cmdLimits(args)
	case "sole":
		r.cmdSole(args)
	case "status":
		r.printStatus()
	case "tasks":
		r.printTasks()
	default:
		slog.Warn("unknown command", "cmd", cmd)
	}
	return true
}

func (r *repl) cmdPickup(args []string) {
	if len(args) != 2 {
		slog.Warn("pickup: want <floor> <up|down>")
		return
	}
	floor, err := strconv.Atoi(args[0])
	if err != nil {
		slog.Warn("pickup: bad floor", "err", err)
		return
	}
	dir, err := directionFromWord(args[1])
	if err != nil {
		slog.Warn("pickup: bad direction", "err", err)
		return
	}
	if err := r.d.Pickup(floor, dir); err != nil {
		slog.Warn("pickup rejected", "err", err)
	}
}

func (r *repl) cmdDropoff(args []string) {
	if len(args) != 2 {
		slog.Warn("dropoff: want <cabin> <floor>")
		return
	}
	cabinID, err := strconv.Atoi(args[0])
	if err != nil {
		slog.Warn("dropoff: bad cabin id", "err", err)
		return
	}
	floor, err := strconv.Atoi(args[1])
	if err != nil {
		slog.Warn("dropoff: bad floor", "err", err)
		return
	}
	if err := r.d.SelectFloor(cabinID, floor); err != nil {
		slog.Warn("dropoff rejected", "err", err)
	}
}

func (r *repl) cmdReset(args []string) {
	if len(args) != 2 {
		slog.Warn("reset: want <cabin> <floor>")
		return
	}
	cabinID, err := strconv.Atoi(args[0])
	if err != nil {
		slog.Warn("reset: bad cabin id", "err", err)
		return
	}
	floor, err := strconv.Atoi(args[1])
	if err != nil {
		slog.Warn("reset: bad floor", "err", err)
		return
	}
	if err := r.d.SetElevator(cabinID, floor); err != nil {
		slog.Warn("reset rejected", "err", err)
	}
}

func (r *repl) cmdLimits(args []string) {
	if len(args) == 1 && args[0] == "off" {
		if err := r.d.SetFloorLimits(nil); err != nil {
			slog.Warn("limits rejected", "err", err)
		}
		return
	}
	if len(args) != 2 {
		slog.Warn("limits: want <bottom> <top> or off")
		return
	}
	bottom, err := strconv.Atoi(args[0])
	if err != nil {
		slog.Warn("limits: bad bottom", "err", err)
		return
	}
	top, err := strconv.Atoi(args[1])
	if err != nil {
		slog.Warn("limits: bad top", "err", err)
		return
	}
	if err := r.d.SetFloorLimits(&cabin.FloorLimits{Bottom: bottom, Top: top}); err != nil {
		slog.Warn("limits rejected", "err", err)
	}
}

func (r *repl) cmdSole(args []string) {
	if len(args) != 1 {
		slog.Warn("sole: want on|off")
		return
	}
	switch args[0] {
	case "on":
		r.d.SetSoleElevatorMode(true)
	case "off":
		r.d.SetSoleElevatorMode(false)
	default:
		slog.Warn("sole: want on|off")
	}
}

func (r *repl) printStatus() {
	for _, s := range r.d.Status() {
		fmt.Fprintf(r.out, "cabin %d: floor=%d dest=%d status=%s dropoffs=%v\n",
			s.ID, s.Floor, s.Destination, s.Status, s.DropOffs)
	}
}

func (r *repl) printTasks() {
	for _, t := range r.d.Tasks() {
		fmt.Fprintf(r.out, "task: floor=%d direction=%s\n", t.Floor, t.Direction)
	}
}

// runInteractive reads single keystrokes: space steps the dispatcher, s
// prints status, q or Ctrl-C exits.
func (r *repl) runInteractive() {
	if err := keyboard.Open(); err != nil {
		slog.Error("interactive: opening keyboard", "err", err)
		return
	}
	defer keyboard.Close()

	fmt.Fprintln(r.out, "space=step  s=status  q=quit")
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			slog.Error("interactive: reading key", "err", err)
			return
		}
		if key == keyboard.KeyCtrlC || char == 'q' {
			return
		}
		switch {
		case char == ' ':
			r.d.Step()
			r.printStatus()
		case char == 's':
			r.printStatus()
		}
	}
}
