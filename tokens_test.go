package inktag_test

import (
	"testing"

	"github.com/inktag/inktag"
)

func TestTokensCoverEveryCharacter(t *testing.T) {
	session := newTestSession(t)

	text := "ab\ncd"

	err := session.HandleChange("doc", text, []inktag.Edit{{Start: 0, End: 0, Text: text}})
	if err != nil {
		t.Fatal(err)
	}

	tokens := session.Tokens("doc", []string{"ab", "cd"})
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4", len(tokens))
	}

	want := []struct{ line, col int }{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	}

	for i, tok := range tokens {
		if tok.Line != want[i].line || tok.Col != want[i].col {
			t.Errorf("token %d at %d:%d, want %d:%d", i, tok.Line, tok.Col, want[i].line, want[i].col)
		}

		if tok.Length != 1 {
			t.Errorf("token %d length %d, want 1", i, tok.Length)
		}

		if tok.Category < 0 || tok.Category >= 2 {
			t.Errorf("token %d category %d out of range", i, tok.Category)
		}
	}
}

func TestTokensStrictlyOrdered(t *testing.T) {
	session := newTestSession(t)

	text := "one\ntwo\nthree"

	err := session.HandleChange("doc", text, []inktag.Edit{{Start: 0, End: 0, Text: text}})
	if err != nil {
		t.Fatal(err)
	}

	tokens := session.Tokens("doc", []string{"one", "two", "three"})

	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Col <= prev.Col) {
			t.Fatalf("tokens out of order: %v before %v", prev, cur)
		}
	}
}

func TestTokensPastLedgerEndOmitted(t *testing.T) {
	session := newTestSession(t)

	err := session.HandleChange("doc", "ab", []inktag.Edit{{Start: 0, End: 0, Text: "ab"}})
	if err != nil {
		t.Fatal(err)
	}

	// The live document has grown past the ledger; trailing positions
	// simply get no tokens.
	tokens := session.Tokens("doc", []string{"abcd"})
	if len(tokens) != 2 {
		t.Errorf("got %d tokens, want 2", len(tokens))
	}
}

func TestTokensUnknownDocument(t *testing.T) {
	session := newTestSession(t)

	tokens := session.Tokens("never-seen", []string{"abc"})
	if len(tokens) != 0 {
		t.Errorf("got %d tokens for unknown document, want 0", len(tokens))
	}
}
