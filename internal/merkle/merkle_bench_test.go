package merkle

import "testing"

func BenchmarkBuild(b *testing.B) {
	leaves := make([][]byte, 1000)
	for i := range leaves {
		leaves[i] = []byte{byte(i), byte(i >> 8)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(leaves)
	}
}

func BenchmarkProof(b *testing.B) {
	leaves := make([][]byte, 1000)
	for i := range leaves {
		leaves[i] = []byte{byte(i), byte(i >> 8)}
	}
	tree := Build(leaves)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Proof(i % len(leaves)); err != nil {
			b.Fatalf("Proof: %v", err)
		}
	}
}
