package commands

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/maksimkurb/torwall/src/internal/config"
	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
)

const privilegeMessage = "this tool must be run as root, use sudo"

// Execute runs torwall with command line args (without the program name).
//
// The privilege guard runs before anything else, including help. Without an
// action flag the usage is printed and nil is returned.
func Execute(args []string, ctx *AppContext) error {
	log.SetOutput(ctx.Stdout, ctx.Stderr)

	if !ctx.Deps.PrivilegeChecker().IsPrivileged() {
		return errors.NewPrivilegeError(privilegeMessage)
	}

	var setup, flush, check bool

	fs := flag.NewFlagSet("torwall", flag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	fs.BoolVar(&setup, "s", false, "Shorthand for --setup")
	fs.BoolVar(&setup, "setup", false, "Configure torrc, restart Tor and redirect all traffic through it")
	fs.BoolVar(&flush, "f", false, "Shorthand for --flush")
	fs.BoolVar(&flush, "flush", false, "Flush iptables rules, traffic is no longer redirected")
	fs.BoolVar(&check, "check", false, "Verify the current configuration without changing it")
	fs.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath, "Path to configuration file (optional)")
	fs.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	// Usage is printed below, where help and parse errors are told apart
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			printUsage(ctx.Stdout, fs, ctx.Version)
			return nil
		}
		printUsage(ctx.Stderr, fs, ctx.Version)
		return errors.NewUsageError(err.Error())
	}
	if fs.NArg() > 0 {
		return errors.NewUsageError(fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	var selected []Runner
	if setup {
		selected = append(selected, CreateSetupCommand())
	}
	if flush {
		selected = append(selected, CreateFlushCommand())
	}
	if check {
		selected = append(selected, CreateSelfCheckCommand())
	}

	switch len(selected) {
	case 0:
		printUsage(ctx.Stdout, fs, ctx.Version)
		return nil
	case 1:
	default:
		return errors.NewUsageError("--setup, --flush and --check are mutually exclusive")
	}

	cmd := selected[0]
	log.Debugf("Running %s", cmd.Name())

	if err := cmd.Init(ctx); err != nil {
		return err
	}
	return cmd.Run()
}

func printUsage(w io.Writer, fs *flag.FlagSet, version string) {
	fmt.Fprintf(w, "Transparent proxying through Tor\n")
	if version != "" {
		fmt.Fprintf(w, "Version: %s\n", version)
	}
	fmt.Fprintf(w, "\nUsage: torwall [options] <-s|--setup|-f|--flush|--check>\n\n")
	fmt.Fprintf(w, "Options:\n")

	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
}
