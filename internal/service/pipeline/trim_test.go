package pipeline

import (
	"strings"
	"testing"

	"github.com/sandevgo/trackmate/internal/core"
)

// wordCount stands in for the tokenizer so trimming tests stay
// deterministic and offline.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

func turnsOf(contents ...string) []core.Turn {
	turns := make([]core.Turn, 0, len(contents))
	for i, c := range contents {
		if i%2 == 0 {
			turns = append(turns, core.UserTurn(c))
		} else {
			turns = append(turns, core.AssistantTurn(c))
		}
	}
	return turns
}

func TestTrimHistoryKeepsEverythingUnderBudget(t *testing.T) {
	turns := turnsOf("one two", "three four", "five six")
	got := trimHistory(turns, 10, wordCount)
	if len(got) != 3 {
		t.Fatalf("expected all 3 turns, got %d", len(got))
	}
}

func TestTrimHistoryDropsOldestFirst(t *testing.T) {
	turns := turnsOf("a b c d", "e f g h", "i j k l")
	got := trimHistory(turns, 8, wordCount)
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Content != "e f g h" {
		t.Errorf("expected oldest surviving turn %q, got %q", "e f g h", got[0].Content)
	}
}

func TestTrimHistoryAlwaysKeepsNewestTurn(t *testing.T) {
	turns := turnsOf("short", "this one is far too long for the budget")
	got := trimHistory(turns, 2, wordCount)
	if len(got) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(got))
	}
	if got[0].Content != "this one is far too long for the budget" {
		t.Errorf("newest turn must survive trimming, got %q", got[0].Content)
	}
}

func TestTrimHistoryEmpty(t *testing.T) {
	if got := trimHistory(nil, 100, wordCount); len(got) != 0 {
		t.Fatalf("expected empty result, got %d turns", len(got))
	}
}
