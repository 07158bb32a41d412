package wif

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/rowbotony/croncoin-walletcore/internal/base58"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	key, _ := hex.DecodeString("0000000000000000000000000000000000000000000000000000000000000001")
	key = key[len(key)-32:]
	encoded, err := EncodeTestnet(key)
	if err != nil {
		t.Fatal(err)
	}
	version, decoded, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if version != VersionTestnet {
		t.Fatalf("version = %x want %x", version, VersionTestnet)
	}
	if !bytes.Equal(decoded, key) {
		t.Fatalf("decoded key = %x want %x", decoded, key)
	}
}

func TestEncodeRejectsWrongLength(t *testing.T) {
	if _, err := EncodeTestnet(make([]byte, 31)); err != ErrInvalidKeyLength {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}

func TestDecodeRejectsUncompressedPayload(t *testing.T) {
	key := make([]byte, 32)
	payloadWIF, err := EncodeTestnet(key)
	if err != nil {
		t.Fatal(err)
	}
	// Sanity: a well-formed compressed WIF decodes fine.
	if _, _, err := Decode(payloadWIF); err != nil {
		t.Fatalf("expected valid decode, got %v", err)
	}
	// Build a 33-byte payload (no compression flag) and check it's rejected.
	uncompressed := base58.CheckEncode(append([]byte{VersionTestnet}, key...))
	if _, _, err := Decode(uncompressed); err == nil {
		t.Fatal("expected uncompressed 33-byte payload to be rejected")
	}
}
