package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// fixFlags holds all flags for the fix invocation.
type fixFlags struct {
	config   string
	quiet    bool
	verbose  bool
	dryRun   bool
	noAtomic bool
	version  bool
}

// parseFlags parses command-line flags and returns positional args.
// args is os.Args[1:]. On --help, pflag prints usage and returns flag.ErrHelp.
func parseFlags(args []string, stderr io.Writer) (*fixFlags, []string, error) {
	fs := flag.NewFlagSet("mdtablefix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &fixFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show line and span counters")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print the result to stdout, leave the file untouched")
	fs.BoolVar(&f.noAtomic, "no-atomic", false, "overwrite the file directly instead of temp-file-and-rename")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
