package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lixenwraith/twopane/app"
	"github.com/lixenwraith/twopane/core"
	"github.com/lixenwraith/twopane/terminal"
)

var version = "dev"

// CLI is the command line surface; running with no arguments starts the UI
type CLI struct {
	Debug   bool             `help:"Write debug logs to logs/twopane.log"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	// Panic recovery: the crash handler restores the terminal before printing
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("twopane"),
		kong.Description("Two-panel terminal UI. Press q to quit."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logFile := setupLogging(cli.Debug)

	code, err := run(terminal.New())
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		core.Report(os.Stderr, err)
	}
	if code != 0 {
		os.Exit(code)
	}
}

// run owns the terminal for the lifetime of the loop and returns the exit status
// A termination signal ends the loop by restoring the terminal; that exit is not a failure
func run(term terminal.Terminal) (int, error) {
	core.InstallHooks(term)

	watch := terminal.RestoreOnSignal(term)
	defer watch.Stop()

	err := terminal.Session(term, app.New().Run)
	if sig := watch.Signal(); sig != nil {
		log.Printf("exiting on %v: %v", sig, err)
		return terminal.ExitCode(sig), nil
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}
