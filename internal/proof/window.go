package proof

// extractWindow reads w contiguous bytes from fragment starting at offset,
// wrapping around the end of the fragment back to the start.
func extractWindow(fragment []byte, offset uint64, w int) []byte {
	size := len(fragment)
	buf := make([]byte, w)
	for i := 0; i < w; i++ {
		buf[i] = fragment[(int(offset)+i)%size]
	}
	return buf
}

// extractWindows applies extractWindow at every offset in offsets, in order.
func extractWindows(fragment []byte, offsets []uint64, w int) [][]byte {
	windows := make([][]byte, len(offsets))
	for i, o := range offsets {
		windows[i] = extractWindow(fragment, o, w)
	}
	return windows
}
