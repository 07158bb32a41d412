package bech32

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestEncodeWitnessProgramBIP173Vector(t *testing.T) {
	// BIP-173: BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4 encodes
	// witness-v0 program 751e76e8199196d454941c45d1b3a323f1433bd6.
	program, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeWitnessProgram("bc", program)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.ToLower("BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4")
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestConvertBitsPadding(t *testing.T) {
	in := []int{0xff, 0x00}
	out, err := ConvertBits(in, 8, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 5-bit groups for 2 bytes, got %d", len(out))
	}
}

func TestConvertBitsNoPadRejectsLeftover(t *testing.T) {
	in := []int{1, 1, 1}
	if _, err := ConvertBits(in, 5, 8, false); err == nil {
		t.Fatal("expected error for non-zero leftover without padding")
	}
}
