// Package apply executes edit plans against in-memory source text.
//
// The buffer is line-indexed and keeps original line numbers stable while
// edits are applied: inserted text is anchored before its target line instead
// of renumbering the lines after it, and deleted lines leave a tombstone.
// Every edit therefore addresses the coordinates it was computed against, and
// priority order is the only sequencing signal. An edit whose expected
// original text no longer matches the live buffer is skipped and counted, not
// treated as a failure of the whole plan.
package apply

import (
	"sort"
	"strings"

	"github.com/refract-dev/refract/pkg/types"
)

// slot is one original source line plus anything anchored to it.
type slot struct {
	text    string
	deleted bool
	before  []string // inserted line blocks, rendered ahead of the line
}

// buffer is the line-indexed edit target.
type buffer struct {
	slots []slot
	tail  []string // blocks inserted past the last line
}

func newBuffer(source string) *buffer {
	lines := strings.Split(source, "\n")
	slots := make([]slot, len(lines))
	for i, l := range lines {
		slots[i].text = l
	}
	return &buffer{slots: slots}
}

func (b *buffer) render() string {
	var out []string
	emit := func(block string) {
		parts := strings.Split(block, "\n")
		if len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		out = append(out, parts...)
	}
	for _, s := range b.slots {
		for _, block := range s.before {
			emit(block)
		}
		if !s.deleted {
			out = append(out, s.text)
		}
	}
	for _, block := range b.tail {
		emit(block)
	}
	return strings.Join(out, "\n")
}

// Apply runs every edit in the plan against source, highest priority first
// (plan order breaks ties), and returns the transformed text with per-edit
// statistics. It never mutates its inputs.
func Apply(source string, p *types.EditPlan) (string, types.ApplyStats, error) {
	if p == nil {
		return "", types.ApplyStats{}, types.NewError(types.Blocked, "no edit plan to apply")
	}

	ordered := make([]types.TextEdit, len(p.Edits))
	copy(ordered, p.Edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	buf := newBuffer(source)
	var stats types.ApplyStats
	for _, e := range ordered {
		if buf.applyOne(e) {
			stats.AppliedCount++
		} else {
			stats.SkippedCount++
		}
	}

	return buf.render(), stats, nil
}

func (b *buffer) applyOne(e types.TextEdit) bool {
	if !e.Location.Valid() {
		return false
	}
	switch e.Type {
	case types.Insert:
		return b.insert(e)
	case types.Replace, types.Delete:
		return b.replace(e)
	default:
		return false
	}
}

func (b *buffer) insert(e types.TextEdit) bool {
	line, col := e.Location.StartLine, e.Location.StartCol

	// Whole-line block insert: anchored before the target line so later
	// edits keep their original line numbers.
	if col == 0 && (strings.HasSuffix(e.NewText, "\n") || strings.Contains(e.NewText, "\n")) {
		if line == len(b.slots) {
			b.tail = append(b.tail, e.NewText)
			return true
		}
		if line < 0 || line > len(b.slots) {
			return false
		}
		b.slots[line].before = append(b.slots[line].before, e.NewText)
		return true
	}

	// Intra-line insert.
	if line < 0 || line >= len(b.slots) {
		return false
	}
	s := &b.slots[line]
	if s.deleted || col > len(s.text) {
		return false
	}
	s.text = s.text[:col] + e.NewText + s.text[col:]
	return true
}

func (b *buffer) replace(e types.TextEdit) bool {
	r := e.Location
	if r.StartLine < 0 || r.EndLine >= len(b.slots) {
		return false
	}
	for i := r.StartLine; i <= r.EndLine; i++ {
		if b.slots[i].deleted {
			return false
		}
	}

	current, ok := b.textAt(r)
	if !ok || current != e.OriginalText {
		return false // buffer drifted since the plan was computed
	}

	newText := e.NewText
	if e.Type == types.Delete {
		newText = ""
	}

	first := &b.slots[r.StartLine]
	last := b.slots[r.EndLine]
	merged := first.text[:r.StartCol] + newText + last.text[r.EndCol:]

	// A delete that consumes the entire span removes the lines instead of
	// leaving empty ones behind.
	if merged == "" && r.StartCol == 0 {
		for i := r.StartLine; i <= r.EndLine; i++ {
			b.slots[i].deleted = true
		}
		return true
	}

	first.text = merged
	for i := r.StartLine + 1; i <= r.EndLine; i++ {
		b.slots[i].deleted = true
	}
	return true
}

// textAt reads the live buffer content covered by r.
func (b *buffer) textAt(r types.CodeRange) (string, bool) {
	if r.SingleLine() {
		t := b.slots[r.StartLine].text
		if r.StartCol > len(t) || r.EndCol > len(t) {
			return "", false
		}
		return t[r.StartCol:r.EndCol], true
	}
	start := b.slots[r.StartLine].text
	end := b.slots[r.EndLine].text
	if r.StartCol > len(start) || r.EndCol > len(end) {
		return "", false
	}
	parts := []string{start[r.StartCol:]}
	for i := r.StartLine + 1; i < r.EndLine; i++ {
		parts = append(parts, b.slots[i].text)
	}
	parts = append(parts, end[:r.EndCol])
	return strings.Join(parts, "\n"), true
}
