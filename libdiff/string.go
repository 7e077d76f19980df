package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a character diff of from and to, cleaned up to align
// with word boundaries where possible.
func DiffString(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// InlineText renders diffs as text with deletions as [-x-] and insertions
// as {+x+}. del and ins decorate the markers, for instance with colour.
func InlineText(diffs []diffpatch.Diff, del, ins func(string, ...any) string) string {
	if del == nil {
		del = plain
	}
	if ins == nil {
		ins = plain
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete:
			sb.WriteString(del("[-" + d.Text + "-]"))
		case diffpatch.DiffInsert:
			sb.WriteString(ins("{+" + d.Text + "+}"))
		}
	}
	return sb.String()
}

func plain(s string, _ ...any) string { return s }
