package main

import (
	"errors"
	"fmt"
	"io"

	mdtablefix "github.com/alnah/go-mdtablefix"
	"github.com/alnah/go-mdtablefix/internal/config"
	flag "github.com/spf13/pflag"
)

// ErrUsage is returned when the argument count is wrong.
var ErrUsage = errors.New("usage: mdtablefix [flags] <file.md>")

// runMain is the testable entry point. It returns the process exit code.
func runMain(args []string, env *Environment) int {
	if err := run(args, env); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			// pflag already printed usage.
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitError
	}
	return ExitSuccess
}

// run parses arguments, resolves configuration, and rewrites the target file.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdtablefix %s\n", Version)
		return nil
	}

	cfg := env.Config
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	if len(positional) != 1 {
		return ErrUsage
	}
	path := positional[0]

	// Flags override config defaults.
	quiet := cfg.Output.Quiet || flags.quiet
	verbose := cfg.Output.Verbose || flags.verbose
	atomic := cfg.Write.Atomic && !flags.noAtomic

	fixer := mdtablefix.NewFixer(mdtablefix.WithAtomicWrite(atomic))

	if flags.dryRun {
		transformed, result, err := fixer.Preview(path)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(env.Stdout, transformed); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
		reportCounters(env.Stderr, verbose, result)
		return nil
	}

	result, err := fixer.FixFile(path)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Successfully processed '%s'\n", path)
	}
	reportCounters(env.Stderr, verbose, result)
	return nil
}

// reportCounters prints transformation counters when verbose is enabled.
func reportCounters(w io.Writer, verbose bool, result mdtablefix.Result) {
	if !verbose {
		return
	}
	fmt.Fprintf(w, "%d lines, %d table lines, %d code spans, changed=%t\n",
		result.Lines, result.TableLines, result.Spans, result.Changed)
}
