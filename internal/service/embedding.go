package service

import (
	"strings"
	"unicode"

	pgvector "github.com/pgvector/pgvector-go"
)

// GenerateEmbedding produces a deterministic embedding for recipe search
// ordering. It is a cheap local stand-in for a real embedding model and
// only needs to be stable, not semantically deep. The dimensions are word
// count, vowel count and total letter count of the lowercased text.
func GenerateEmbedding(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, letters float32
	for _, r := range text {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
			letters++
		case unicode.IsLetter(r):
			letters++
		}
	}
	words := float32(len(strings.Fields(text)))
	return pgvector.NewVector([]float32{words, vowels, letters})
}
