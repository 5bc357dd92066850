package challenge

import (
	"encoding/binary"
	"sort"

	"github.com/gitgold-project/gitgold-core/pkg/util"
)

// deriveOffsets computes sampleCount unique byte offsets in [0, size)
// deterministically from seed. Rejection sampling is cheap while
// sampleCount is small relative to size; once more than half of all
// offsets must be selected, rejection sampling's expected retry count grows
// without bound, so a seeded Fisher-Yates shuffle over the full index pool
// is used instead.
func deriveOffsets(seed [32]byte, size uint64, sampleCount int) []uint64 {
	if uint64(sampleCount) > size/2 {
		return fisherYatesOffsets(seed, size, sampleCount)
	}
	return rejectionSampleOffsets(seed, size, sampleCount)
}

func rejectionSampleOffsets(seed [32]byte, size uint64, sampleCount int) []uint64 {
	seen := make(map[uint64]struct{}, sampleCount)
	offsets := make([]uint64, 0, sampleCount)
	var counter uint64
	for len(offsets) < sampleCount {
		h := util.SHA256Concat(seed[:], util.Uint64LE(counter))
		counter++
		v := binary.BigEndian.Uint64(h[:8]) % size
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		offsets = append(offsets, v)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	return offsets
}

func fisherYatesOffsets(seed [32]byte, size uint64, sampleCount int) []uint64 {
	pool := make([]uint64, size)
	for i := range pool {
		pool[i] = uint64(i)
	}

	var counter uint64
	for i := len(pool) - 1; i > 0; i-- {
		h := util.SHA256Concat(seed[:], util.Uint64LE(counter))
		counter++
		r := binary.BigEndian.Uint64(h[:8]) % uint64(i+1)
		pool[i], pool[r] = pool[r], pool[i]
	}

	selected := append([]uint64{}, pool[:sampleCount]...)
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return selected
}
