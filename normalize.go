package mdtablefix

import (
	"regexp"
	"strings"
)

// nbsp is the non-breaking space substituted for ordinary spaces inside
// code spans on table lines.
const nbsp = "\u00A0"

// Precompiled regex patterns for performance.
var (
	// Inline code span: a backtick pair with no backtick in between.
	// An unterminated trailing backtick matches nothing.
	codeSpan = regexp.MustCompile("`[^`]*`")
)

// RewriteSpan replaces every ASCII space in a code span's content with NBSP.
// When the content carries an end-of-line comment (first "#"), the single
// space immediately before the "#" stays a breakable ASCII space; spaces in
// the comment text itself still become NBSP. Later "#" characters are plain
// comment text. The content is the span interior, backticks excluded.
func RewriteSpan(content string) string {
	hashPos := strings.Index(content, "#")
	if hashPos < 0 {
		return strings.ReplaceAll(content, " ", nbsp)
	}

	if hashPos > 0 && content[hashPos-1] == ' ' {
		before := strings.ReplaceAll(content[:hashPos-1], " ", nbsp)
		comment := strings.ReplaceAll(content[hashPos:], " ", nbsp)
		return before + " " + comment
	}

	before := strings.ReplaceAll(content[:hashPos], " ", nbsp)
	comment := strings.ReplaceAll(content[hashPos:], " ", nbsp)
	return before + comment
}

// NormalizeTableLine rewrites every backtick span in a table line with
// RewriteSpan, leaving all text outside the spans untouched.
func NormalizeTableLine(line string) string {
	rewritten, _ := normalizeTableLine(line)
	return rewritten
}

// normalizeTableLine is NormalizeTableLine plus the number of spans matched.
func normalizeTableLine(line string) (string, int) {
	spans := 0
	rewritten := codeSpan.ReplaceAllStringFunc(line, func(match string) string {
		spans++
		return "`" + RewriteSpan(match[1:len(match)-1]) + "`"
	})
	return rewritten, spans
}

// splitLines splits content into lines, each keeping its terminator so the
// document reassembles byte-for-byte. A final line without a terminator is
// returned as-is; CRLF terminators stay intact.
func splitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}
