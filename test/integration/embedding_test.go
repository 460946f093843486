//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/sandevgo/trackmate/internal/providers/embed"
)

// Requires an embedding endpoint. Run with:
//
//	EMBEDDING_API_KEY=... go test -tags integration ./test/integration
func TestOpenAIEmbedder(t *testing.T) {
	apiKey := os.Getenv("EMBEDDING_API_KEY")
	if apiKey == "" {
		t.Skip("EMBEDDING_API_KEY not set")
	}

	baseURL := os.Getenv("EMBEDDING_BASE_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api"
	}
	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = "openai/text-embedding-3-small"
	}

	embedder := embed.NewOpenAIEmbedder(baseURL, apiKey, model)

	vec, err := embedder.Embed(context.Background(), "Hello Trackmate")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vec) == 0 {
		t.Fatal("Generated vector is empty")
	}

	allZeros := true
	for _, v := range vec {
		if v != 0 {
			allZeros = false
			break
		}
	}
	if allZeros {
		t.Fatal("Vector contains all zeros")
	}

	t.Logf("Vector dimensions: %d", len(vec))
}
