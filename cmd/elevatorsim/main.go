// Command elevatorsim drives a dispatcher.Dispatcher from either scripted
// line commands on stdin or single-keystroke interactive control. It never
// reaches into dispatcher internals — every effect goes through the public
// package API, the same one any other caller would use.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"elevatorcore/cabin"
	"elevatorcore/config"
	"elevatorcore/dispatcher"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	cabinCount := flag.Int("cabins", 0, "override fleet size (0 = use config/default)")
	interactive := flag.Bool("interactive", false, "single-keystroke control instead of line commands")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "elevatorsim: loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *cabinCount > 0 {
		cfg.FleetSize = *cabinCount
	}

	config.InitLogging(cfg.LogLevel)

	d := dispatcher.New(cfg.FleetSize)
	if cfg.FloorLimits != nil {
		if err := d.SetFloorLimits(cfg.FloorLimits); err != nil {
			slog.Error("startup: rejected floor limits from config", "err", err)
			os.Exit(1)
		}
	}
	d.SetSoleElevatorMode(cfg.SoleMode)

	slog.Info("elevatorsim starting", "fleetSize", cfg.FleetSize, "soleMode", cfg.SoleMode, "interactive", *interactive)

	r := &repl{d: d, out: os.Stdout}
	if *interactive {
		r.runInteractive()
		return
	}
	r.runScripted(bufio.NewScanner(os.Stdin))
}

func directionFromWord(word string) (cabin.Direction, error) {
	switch word {
	case "up":
		return cabin.Up, nil
	case "down":
		return cabin.Down, nil
	default:
		return cabin.Unassigned, fmt.Errorf("elevatorsim: unknown direction %q, want up|down", word)
	}
}
