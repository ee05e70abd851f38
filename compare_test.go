package inktag_test

import (
	"strings"
	"testing"

	"github.com/inktag/inktag"
)

func TestCompareAligned(t *testing.T) {
	session := newTestSession(t)

	err := session.HandleChange("doc", "same\ntext\n", []inktag.Edit{{Start: 0, End: 0, Text: "same\ntext\n"}})
	if err != nil {
		t.Fatal(err)
	}

	result := session.Compare("doc", "same\ntext\n")
	if result.Diff != "" {
		t.Errorf("got diff for aligned ledger:\n%s", result.Diff)
	}
}

func TestCompareDrifted(t *testing.T) {
	session := newTestSession(t)

	err := session.HandleChange("doc", "old line\n", []inktag.Edit{{Start: 0, End: 0, Text: "old line\n"}})
	if err != nil {
		t.Fatal(err)
	}

	result := session.Compare("doc", "new line\n")
	if result.Diff == "" {
		t.Fatal("expected a diff for drifted ledger")
	}

	if !strings.Contains(result.Diff, "-old line") || !strings.Contains(result.Diff, "+new line") {
		t.Errorf("unexpected diff:\n%s", result.Diff)
	}
}
