package merkle

import "testing"

func BenchmarkNewTree(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		leaves := randomLeaves(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = NewTree(leaves)
			}
		})
	}
}

func BenchmarkVerifyProof(b *testing.B) {
	leaves := randomLeaves(4096)
	tree, _ := NewTree(leaves)
	proof, _ := tree.ProofForIndex(0)
	leaf := tree.Leaves[0]

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = VerifyProof(leaf, proof, tree.Root)
	}
}

func benchName(size int) string {
	switch size {
	case 16:
		return "16 leaves"
	case 256:
		return "256 leaves"
	default:
		return "4096 leaves"
	}
}
