package mdtablefix

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alnah/go-mdtablefix/internal/fileutil"
)

// defaultPerm is used when the target's permission bits cannot be read.
const defaultPerm fs.FileMode = 0o644

// Fixer orchestrates the table code-span normalization.
// Create with NewFixer, transform in-memory content with Process, and
// rewrite files in place with FixFile.
type Fixer struct {
	cfg fixerConfig
}

// NewFixer creates a Fixer with default configuration (atomic writes on).
// Use options to customize behavior (e.g., WithAtomicWrite).
func NewFixer(opts ...Option) *Fixer {
	f := &Fixer{
		cfg: fixerConfig{atomicWrite: true},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process transforms a whole document: every table line has its code spans
// rewritten, every other line passes through unchanged. Line terminators are
// preserved as read.
func (f *Fixer) Process(content string) (string, Result) {
	lines := splitLines(content)
	result := Result{Lines: len(lines)}

	tracker := &TableTracker{}
	var b strings.Builder
	b.Grow(len(content))

	for _, line := range lines {
		// The tracker state is observed but never gates the rewrite.
		if tracker.Observe(line) {
			result.TableLines++
			rewritten, spans := normalizeTableLine(line)
			result.Spans += spans
			if rewritten != line {
				result.Changed = true
			}
			b.WriteString(rewritten)
			continue
		}
		b.WriteString(line)
	}

	return b.String(), result
}

// Preview reads path and returns the transformed document without writing
// anything back.
func (f *Fixer) Preview(path string) (string, Result, error) {
	content, err := readFile(path)
	if err != nil {
		return "", Result{}, err
	}
	transformed, result := f.Process(content)
	return transformed, result, nil
}

// FixFile reads path, transforms it, and rewrites the file in place,
// preserving its permission bits. The write is atomic (temp file + rename)
// unless disabled with WithAtomicWrite(false).
func (f *Fixer) FixFile(path string) (Result, error) {
	content, err := readFile(path)
	if err != nil {
		return Result{}, err
	}

	transformed, result := f.Process(content)

	perm := defaultPerm
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	if f.cfg.atomicWrite {
		err = fileutil.WriteFileAtomic(path, []byte(transformed), perm)
	} else {
		err = os.WriteFile(path, []byte(transformed), perm)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %v", ErrWriteFile, path, err)
	}

	return result, nil
}

// readFile reads the whole target into memory.
func readFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- target path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrReadFile, path, err)
	}
	return string(content), nil
}
