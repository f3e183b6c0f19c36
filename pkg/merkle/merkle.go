// Package merkle builds binary keccak256 merkle trees over 32-byte leaves.
//
// Two construction rules are fixed here because they change the root value:
//
//   - Leaves are sorted byte-lexicographically before building, so the root
//     is independent of insertion order.
//   - Sibling pairs are sorted before hashing (keccak256(min || max)), so
//     proofs are plain hash lists with no left/right position flags. A level
//     with an odd node count promotes its last node to the next level
//     unchanged; it is never hashed with itself.
package merkle

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/crypto"
)

// NewTree constructs a merkle tree from the given leaves. The input slice is
// not modified; leaves are copied and sorted into canonical order first.
func NewTree(leaves [][32]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeaves
	}

	sorted := SortLeaves(leaves)

	// Build tree levels bottom-up
	levels := make([][][32]byte, 0)
	levels = append(levels, sorted)

	currentLevel := sorted
	for len(currentLevel) > 1 {
		nextLevel := make([][32]byte, 0, (len(currentLevel)+1)/2)

		for i := 0; i < len(currentLevel); i += 2 {
			if i+1 < len(currentLevel) {
				nextLevel = append(nextLevel, hashPair(currentLevel[i], currentLevel[i+1]))
			} else {
				// Odd node count: promote the last node unchanged
				nextLevel = append(nextLevel, currentLevel[i])
			}
		}

		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	return &Tree{
		Leaves: sorted,
		Root:   currentLevel[0],
		levels: levels,
	}, nil
}

// ProofForLeaf generates an inclusion proof for the given leaf hash.
// For duplicated leaves the first occurrence in canonical order is proven;
// the resulting proof is valid for the leaf value either way.
func (t *Tree) ProofForLeaf(leaf [32]byte) ([][32]byte, error) {
	index := sort.Search(len(t.Leaves), func(i int) bool {
		return bytes.Compare(t.Leaves[i][:], leaf[:]) >= 0
	})
	if index >= len(t.Leaves) || t.Leaves[index] != leaf {
		return nil, ErrLeafNotFound
	}
	return t.ProofForIndex(index)
}

// ProofForIndex generates an inclusion proof for the leaf at the given index
// in canonical order. The proof is the ordered list of sibling hashes from
// leaf to root; promoted nodes contribute no proof element.
func (t *Tree) ProofForIndex(index int) ([][32]byte, error) {
	if index < 0 || index >= len(t.Leaves) {
		return nil, ErrLeafNotFound
	}

	proof := make([][32]byte, 0)

	for level := 0; level < len(t.levels)-1; level++ {
		currentLevel := t.levels[level]

		var siblingIndex int
		if index%2 == 0 {
			siblingIndex = index + 1
		} else {
			siblingIndex = index - 1
		}

		// The unpaired last node of an odd level has no sibling; it was
		// promoted unchanged, so nothing is added to the proof.
		if siblingIndex < len(currentLevel) {
			proof = append(proof, currentLevel[siblingIndex])
		}

		index = index / 2
	}

	return proof, nil
}

// VerifyProof reports whether leaf is included in the tree with the given
// root. It folds the leaf with each proof element using the sorted-pair hash
// and compares the result against root. Pure function, never errors; a
// tampered leaf, proof element or root simply yields false.
func VerifyProof(leaf [32]byte, proof [][32]byte, root [32]byte) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}
	return computed == root
}

// SortLeaves returns a copy of the leaves in canonical byte-lexicographic
// order. Duplicates are preserved.
func SortLeaves(leaves [][32]byte) [][32]byte {
	sorted := make([][32]byte, len(leaves))
	copy(sorted, leaves)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})
	return sorted
}

// hashPair computes keccak256(min(a,b) || max(a,b)).
func hashPair(a, b [32]byte) [32]byte {
	if bytes.Compare(b[:], a[:]) < 0 {
		a, b = b, a
	}
	data := make([]byte, 64)
	copy(data[0:32], a[:])
	copy(data[32:64], b[:])

	return [32]byte(crypto.Keccak256Hash(data))
}
