package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		excludes string
	}{
		{
			name:     "bold survives",
			input:    "hello **world**",
			contains: "<strong>world</strong>",
		},
		{
			name:     "code survives",
			input:    "run `go test`",
			contains: "<code>go test</code>",
		},
		{
			name:     "headings are stripped",
			input:    "# Title",
			excludes: "<h1>",
		},
		{
			name:     "images are stripped",
			input:    "![alt](http://example.com/x.png)",
			excludes: "<img",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("expected %q in output, got %q", tt.contains, got)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("did not expect %q in output, got %q", tt.excludes, got)
			}
		})
	}
}

func TestSplitHTML(t *testing.T) {
	t.Run("short text is a single chunk", func(t *testing.T) {
		chunks := SplitHTML("hello", 100)
		if len(chunks) != 1 || chunks[0] != "hello" {
			t.Errorf("unexpected chunks: %v", chunks)
		}
	})

	t.Run("long text splits at newlines", func(t *testing.T) {
		text := strings.Repeat("line one\n", 30)
		chunks := SplitHTML(text, 100)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 100 {
				t.Errorf("chunk %d exceeds limit: %d", i, len(c))
			}
		}
	})
}
