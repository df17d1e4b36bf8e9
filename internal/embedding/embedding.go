// Package embedding produces deterministic text vectors for recipe similarity search.
package embedding

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	pgvector "github.com/pgvector/pgvector-go"
)

// Dimensions must match the vector column width in the recipes table.
const Dimensions = 64

// Generate hashes the lowercase words of text into a fixed-width,
// L2-normalised bag-of-words vector. Empty text yields a zero vector of
// the right width so the column constraint still holds.
func Generate(text string) pgvector.Vector {
	vec := make([]float32, Dimensions)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		vec[h.Sum32()%Dimensions]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	if norm > 0 {
		n := float32(math.Sqrt(norm))
		for i := range vec {
			vec[i] /= n
		}
	}
	return pgvector.NewVector(vec)
}
