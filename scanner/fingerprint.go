package scanner

import (
	"github.com/cnf/structhash"
)

// tokenDigest is the hashed projection of a token.
type tokenDigest struct {
	Kind    int
	Lexeme  string
	Literal string
	Line    int
}

// Fingerprint computes a digest of a token sequence. Identical sequences
// have identical fingerprints; the scanner keeps no state across runs, so
// scanning the same input twice yields the same fingerprint.
func Fingerprint(tokens []Token) (string, error) {
	digests := make([]tokenDigest, len(tokens))
	for i, t := range tokens {
		digests[i] = tokenDigest{
			Kind:    int(t.Kind),
			Lexeme:  t.Lexeme,
			Literal: t.Literal.Type().String() + ":" + t.Literal.String(),
			Line:    t.Line,
		}
	}
	return structhash.Hash(digests, 1)
}
