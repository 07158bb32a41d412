package base58

import (
	"bytes"
	"testing"
)

func TestEncodeLeadingZeroEdgeCases(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte{0x00, 0x01}, "12"},
		{[]byte{0x00, 0x00}, "11"},
		{[]byte{0x00, 0xAB, 0xCD}, "1" + Encode([]byte{0xAB, 0xCD})},
	}
	for _, c := range cases {
		got := Encode(c.in)
		if got != c.want {
			t.Errorf("Encode(%x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoundTripLeadingZeros(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x00, 0xAB, 0xCD},
		{0x00, 0x00},
		{0x00, 0x00, 0x01, 0x02, 0x03},
		{0xff, 0x00, 0x01},
	}
	for _, c := range cases {
		encoded := Encode(c)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", encoded, err)
		}
		want := c
		if want == nil {
			want = []byte{}
		}
		if !bytes.Equal(decoded, want) {
			t.Errorf("round trip %x -> %q -> %x", c, encoded, decoded)
		}
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	if _, err := Decode("0OIl"); err != ErrInvalidCharacter {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
}

func TestCheckEncodeDecodeRoundTrip(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i)
	}
	encoded := CheckEncode(payload)
	decoded, err := CheckDecode(encoded)
	if err != nil {
		t.Fatalf("CheckDecode error: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("CheckDecode round trip mismatch: got %x want %x", decoded, payload)
	}
}

func TestCheckDecodeBadChecksum(t *testing.T) {
	payload := []byte("hello world")
	encoded := CheckEncode(payload)
	// Corrupt the last character.
	corrupted := encoded[:len(encoded)-1] + "9"
	if corrupted == encoded {
		corrupted = encoded[:len(encoded)-1] + "8"
	}
	if _, err := CheckDecode(corrupted); err != ErrChecksumMismatch {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}
