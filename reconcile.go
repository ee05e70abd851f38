package inktag

import (
	"cmp"
	"slices"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/inktag/inktag/internal/tagseq"
)

// Edit is one (range, replacement) element of a change notification.
// Start and End are rune offsets into the document text before the change;
// Text replaces the characters in [Start, End).
type Edit struct {
	Start int
	End   int
	Text  string
}

// reconcile updates seq to match newText while preserving tags for retained
// characters. It runs in two phases: a structural patch driven by the
// reported edits, then a rune-level diff of the patched sequence against
// newText as a correctness backstop. The structural pass alone can drift
// when the notification underreports a change; the diff pass alone would
// misalign repeated characters that the structural pass places exactly.
// After reconcile returns, seq.Text() == newText.
func reconcile(seq *tagseq.Sequence, newText string, edits []Edit, minter *tagseq.Minter) {
	patch(seq, newText, edits, minter)
	rediff(seq, newText, minter)
}

// patch applies the reported edits to seq. Entries are processed highest
// start offset first so earlier offsets stay valid as lengths change.
func patch(seq *tagseq.Sequence, newText string, edits []Edit, minter *tagseq.Minter) {
	if newText == "" {
		// An empty buffer has no characters to preserve.
		seq.Clear()
		return
	}

	ordered := slices.Clone(edits)
	slices.SortStableFunc(ordered, func(a, b Edit) int {
		return cmp.Compare(b.Start, a.Start)
	})

	for _, e := range ordered {
		seq.Delete(e.Start, e.End-e.Start)
		seq.Insert(e.Start, minter.MintString(e.Text))
	}
}

// rediff rebuilds seq from a minimal rune-level diff of its current text
// against newText. Unchanged spans keep their characters (tag and category
// intact), inserted spans mint fresh ones, deleted spans are dropped.
func rediff(seq *tagseq.Sequence, newText string, minter *tagseq.Minter) {
	oldText := seq.Text()
	if oldText == newText {
		return
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	diffs := dmp.DiffMainRunes([]rune(oldText), []rune(newText), false)

	oldChars := seq.Chars()
	oldPos := 0
	rebuilt := make([]tagseq.Char, 0, len(newText))

	for _, d := range diffs {
		runes := []rune(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			rebuilt = append(rebuilt, oldChars[oldPos:oldPos+len(runes)]...)
			oldPos += len(runes)

		case diffmatchpatch.DiffDelete:
			oldPos += len(runes)

		case diffmatchpatch.DiffInsert:
			for _, r := range runes {
				rebuilt = append(rebuilt, minter.Mint(r))
			}
		}
	}

	seq.Replace(rebuilt)
}
