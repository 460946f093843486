package pipeline

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/sandevgo/trackmate/internal/core"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load cl100k_base encoding: " + err.Error())
		}
	})
	return tk
}

func countTokens(text string) int {
	return len(getTokenizer().Encode(text, nil, nil))
}

// TrimHistory returns the newest suffix of turns whose combined token
// count fits the budget. The most recent turn is always kept, even if
// it alone exceeds the budget.
func TrimHistory(turns []core.Turn, budget int) []core.Turn {
	return trimHistory(turns, budget, countTokens)
}

func trimHistory(turns []core.Turn, budget int, count func(string) int) []core.Turn {
	if len(turns) == 0 {
		return turns
	}
	total := 0
	start := len(turns)
	for i := len(turns) - 1; i >= 0; i-- {
		total += count(turns[i].Content)
		if total > budget && start < len(turns) {
			break
		}
		start = i
		if total > budget {
			break
		}
	}
	return turns[start:]
}
