package main

// Exit codes for the mdtablefix CLI. The tool's contract is deliberately
// coarse: every failure (usage, read, write, config) exits 1.
const (
	ExitSuccess = 0 // file rewritten, or help/version shown
	ExitError   = 1 // any error
)
