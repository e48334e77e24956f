package mdtablefix

// Result reports what a transformation did.
type Result struct {
	Lines      int  // total lines seen
	TableLines int  // lines classified as table rows
	Spans      int  // backtick spans rewritten (matched, whether or not modified)
	Changed    bool // true if any byte of the document changed
}

// Option configures a Fixer.
type Option func(*Fixer)

// fixerConfig holds internal configuration for Fixer.
type fixerConfig struct {
	atomicWrite bool
}

// WithAtomicWrite controls how FixFile rewrites the target. Enabled (the
// default), output goes to a temporary file in the same directory followed
// by a rename, so a failed write cannot leave a truncated file. Disabled,
// the file is truncated and written directly.
func WithAtomicWrite(enabled bool) Option {
	return func(f *Fixer) {
		f.cfg.atomicWrite = enabled
	}
}
