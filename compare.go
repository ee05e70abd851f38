package inktag

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// CompareResult describes drift between a document's persisted ledger and
// its live text.
type CompareResult struct {
	Key    string
	Ledger string
	Live   string
	Diff   string
}

// Compare diffs the text recorded in key's ledger against liveText and
// returns a unified diff. An empty Diff means the ledger is fully aligned
// with the live document.
func (s *Session) Compare(key, liveText string) *CompareResult {
	ledger := s.sequence(key).Text()

	edits := myers.ComputeEdits(span.URIFromPath(key), ledger, liveText)
	unified := fmt.Sprint(gotextdiff.ToUnified("ledger/"+key, "live/"+key, ledger, edits))

	return &CompareResult{
		Key:    key,
		Ledger: ledger,
		Live:   liveText,
		Diff:   unified,
	}
}
