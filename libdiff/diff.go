package libdiff

import (
	"strings"

	"github.com/dictwrap/go-dictwrap/encode"
	"github.com/dictwrap/go-dictwrap/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Equal reports whether two nodes are structurally equal.
func Equal(from, to *ir.Node) bool {
	return ir.Compare(from, to) == 0
}

// Diff renders a line-oriented diff of the pretty encodings of from and
// to. Unchanged lines carry two leading spaces, removals "- ", additions
// "+ ". Equal inputs produce the empty string.
func Diff(from, to *ir.Node) (string, error) {
	if Equal(from, to) {
		return "", nil
	}
	fromText, err := encode.ToString(from, encode.EncodePretty(true))
	if err != nil {
		return "", err
	}
	toText, err := encode.ToString(to, encode.EncodePretty(true))
	if err != nil {
		return "", err
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromText+"\n", toText+"\n")
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		default:
			prefix = "  "
		}
		for _, line := range splitLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func splitLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
