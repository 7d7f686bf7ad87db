// Package libdiff renders the difference between a file's current text
// and its formatted text, for check-mode reporting.
package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-level diff between from and to and renders it in
// unified style, deletions red and insertions green. Unchanged runs are
// collapsed to their first and last line.
func Lines(from, to string) string {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			writeMarked(&b, d.Text, "-", color.New(color.FgRed))
		case diffpatch.DiffInsert:
			writeMarked(&b, d.Text, "+", color.New(color.FgGreen))
		case diffpatch.DiffEqual:
			writeContext(&b, d.Text)
		}
	}
	return b.String()
}

func writeMarked(b *strings.Builder, text, mark string, c *color.Color) {
	for _, line := range splitKeepNonEmpty(text) {
		b.WriteString(c.Sprintf("%s%s", mark, line))
		b.WriteByte('\n')
	}
}

func writeContext(b *strings.Builder, text string) {
	lines := splitKeepNonEmpty(text)
	if len(lines) > 2 {
		lines = []string{lines[0], "...", lines[len(lines)-1]}
	}
	for _, line := range lines {
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func splitKeepNonEmpty(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
