package sqlite

import (
	"math"
	"testing"
)

func TestSerializeRoundTrip(t *testing.T) {
	in := []float32{0.1, -0.5, 3.25, 0}

	blob, err := serializeVector(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := deserializeVector(blob)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d != %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("index %d: %f != %f", i, in[i], out[i])
		}
	}
}

func TestDeserializeVector_Malformed(t *testing.T) {
	if _, err := deserializeVector([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for non-multiple-of-4 blob")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite clamps to zero", []float32{1, 0}, []float32{-1, 0}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"dimension mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tt.expected)
			}
		})
	}
}
