// Package leafcodec turns quiz answers into fixed-width merkle leaves.
//
// A leaf is keccak256 of the canonical form of the correct answer. Only the
// correct answer is hashed; hashing every option with a correctness flag
// stored alongside would let anyone recover the answer by hashing the small
// option set, so that variant is deliberately not supported.
//
// Canonicalization is part of the commitment: changing it changes every leaf
// and therefore every root. It must stay fixed once batches exist.
package leafcodec

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Canonicalize normalizes an answer for hashing: lowercased, surrounding
// whitespace trimmed, internal whitespace runs collapsed to single spaces.
func Canonicalize(answer string) string {
	return strings.Join(strings.Fields(strings.ToLower(answer)), " ")
}

// HashAnswer computes the leaf hash for an answer:
// keccak256(utf8(Canonicalize(answer))). Deterministic, no side effects.
func HashAnswer(answer string) common.Hash {
	return crypto.Keccak256Hash([]byte(Canonicalize(answer)))
}
