package shamir

import (
	"crypto/rand"
	"testing"
)

func BenchmarkSplit(b *testing.B) {
	secret := make([]byte, 4096)
	if _, err := rand.Read(secret); err != nil {
		b.Fatalf("rand.Read: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Split(secret, 5, 9); err != nil {
			b.Fatalf("Split: %v", err)
		}
	}
}

func BenchmarkReconstruct(b *testing.B) {
	secret := make([]byte, 4096)
	if _, err := rand.Read(secret); err != nil {
		b.Fatalf("rand.Read: %v", err)
	}
	shares, err := Split(secret, 5, 9)
	if err != nil {
		b.Fatalf("Split: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Reconstruct(shares[:5], 5); err != nil {
			b.Fatalf("Reconstruct: %v", err)
		}
	}
}
