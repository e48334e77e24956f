package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtablefix [flags] <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite code spans inside markdown table rows, replacing spaces with")
	fmt.Fprintln(w, "non-breaking spaces so table cells do not wrap code. The space before")
	fmt.Fprintln(w, "a '#' comment marker stays breakable. The file is rewritten in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file.md    Markdown file to rewrite (exactly one)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -n, --dry-run         Print the result to stdout, leave the file untouched")
	fmt.Fprintln(w, "      --no-atomic       Overwrite directly instead of temp-file-and-rename")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show line and span counters")
	fmt.Fprintln(w, "      --version         Show version and exit")
}
