// Package mdtablefix rewrites inline code spans inside markdown table rows,
// replacing ordinary spaces with non-breaking spaces (U+00A0) so table cells
// do not wrap or collapse code fragments when rendered.
//
// # Quick Start
//
// Create a fixer and rewrite a file in place:
//
//	fixer := mdtablefix.NewFixer()
//	result, err := fixer.FixFile("doc.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("rewrote %d code spans\n", result.Spans)
//
// Use Process for in-memory content, or Preview to see what FixFile would
// write without touching the file.
//
// # Transformation Rules
//
// A table line is any line whose whitespace-trimmed form starts with "|".
// Within table lines, every backtick-delimited span has its interior spaces
// replaced by NBSP, with one exception: the single space conventionally
// placed before an end-of-line "#" comment marker stays a breakable ASCII
// space. Spaces inside the comment text itself still become NBSP.
//
// Only the first "#" in a span acts as the comment boundary. All other lines
// pass through byte-for-byte, and the transformation is idempotent.
//
// # File Rewriting
//
// FixFile reads the whole file, transforms it, and writes it back preserving
// line terminators and permission bits. By default the write goes to a
// temporary file in the same directory followed by a rename, so a failed
// write cannot truncate the original. WithAtomicWrite(false) restores a
// plain truncate-and-write.
package mdtablefix
