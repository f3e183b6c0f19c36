package merkle

import "errors"

var (
	// ErrEmptyLeaves is returned when building a tree from no leaves.
	ErrEmptyLeaves = errors.New("cannot build merkle tree from empty leaf set")

	// ErrLeafNotFound is returned when a proof is requested for a leaf that
	// is not part of the tree.
	ErrLeafNotFound = errors.New("leaf not found in merkle tree")
)

// Tree is a binary merkle tree over a canonically sorted leaf set.
// The tree uses keccak256 hashing for Solidity compatibility.
type Tree struct {
	// Leaves contains the leaf hashes in canonical (byte-lexicographic)
	// order. Duplicates are kept.
	Leaves [][32]byte

	// Root is the merkle root hash
	Root [32]byte

	// levels stores all tree levels for proof generation
	// levels[0] = leaves, levels[len-1] = root
	levels [][][32]byte
}
