package util

import (
	"encoding/binary"
	"testing"
)

func TestHexConversion(t *testing.T) {
	original := []byte{0xde, 0xad, 0xbe, 0xef}
	hexStr := BytesToHex(original)
	if hexStr != "deadbeef" {
		t.Errorf("BytesToHex = %s, want deadbeef", hexStr)
	}

	decoded, err := HexToBytes(hexStr)
	if err != nil {
		t.Errorf("HexToBytes error: %v", err)
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("HexToBytes byte %d = %x, want %x", i, decoded[i], original[i])
		}
	}

	if _, err := HexToBytes("zzzz"); err == nil {
		t.Error("HexToBytes should fail on invalid hex")
	}
}

func TestUint32LE(t *testing.T) {
	b := Uint32LE(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("Uint32LE byte %d = %x, want %x", i, b[i], want[i])
		}
	}
	if binary.LittleEndian.Uint32(b) != 0x01020304 {
		t.Error("Uint32LE does not round-trip via binary.LittleEndian")
	}
}

func TestUint64LEAndInt64LE(t *testing.T) {
	b := Uint64LE(0x0102030405060708)
	if binary.LittleEndian.Uint64(b) != 0x0102030405060708 {
		t.Error("Uint64LE does not round-trip")
	}

	neg := Int64LE(-1)
	for _, v := range neg {
		if v != 0xff {
			t.Errorf("Int64LE(-1) = %x, want all 0xff", neg)
			break
		}
	}
}
