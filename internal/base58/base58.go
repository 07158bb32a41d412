// Package base58 implements Bitcoin-style Base58 and Base58Check
// encoding: big-integer base conversion over a 58-character alphabet
// that drops the visually ambiguous 0/O/I/l, with leading zero bytes
// preserved as leading '1' characters.
package base58

import (
	"errors"
	"math/big"

	"github.com/rowbotony/croncoin-walletcore/internal/digest"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var alphabetIndex = func() map[byte]int64 {
	m := make(map[byte]int64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = int64(i)
	}
	return m
}()

// ErrInvalidCharacter is returned by Decode when the input contains a
// byte outside the base58 alphabet.
var ErrInvalidCharacter = errors.New("base58: invalid character")

// ErrChecksumMismatch is returned by CheckDecode when the trailing
// 4-byte checksum does not match the payload.
var ErrChecksumMismatch = errors.New("base58: checksum mismatch")

// Encode returns the base58 encoding of data, treating it as a
// big-endian unsigned integer and preserving each leading zero byte as
// a leading '1' character.
func Encode(data []byte) string {
	n := new(big.Int).SetBytes(data)

	var out []byte
	zero := big.NewInt(0)
	base := big.NewInt(58)
	mod := new(big.Int)
	for n.Cmp(zero) > 0 {
		n.DivMod(n, base, mod)
		out = append(out, alphabet[mod.Int64()])
	}

	// Reverse.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	pad := 0
	for _, b := range data {
		if b != 0 {
			break
		}
		pad++
	}

	return repeat(pad) + string(out)
}

func repeat(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[0]
	}
	return string(b)
}

// Decode reverses Encode, restoring leading '1' characters as zero
// bytes. Only leading '1's count; a '1' appearing after a non-'1'
// character is a literal zero digit inside the encoded number.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	n := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		idx, ok := alphabetIndex[s[i]]
		if !ok {
			return nil, ErrInvalidCharacter
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(idx))
	}

	decoded := n.Bytes()

	pad := 0
	for i := 0; i < len(s) && s[i] == alphabet[0]; i++ {
		pad++
	}

	out := make([]byte, pad+len(decoded))
	copy(out[pad:], decoded)
	return out, nil
}

// CheckEncode appends a 4-byte double-SHA256 checksum to payload and
// base58-encodes the result.
func CheckEncode(payload []byte) string {
	sum := checksum(payload)
	return Encode(append(append([]byte{}, payload...), sum[:]...))
}

// CheckDecode base58-decodes s and verifies/strips the trailing 4-byte
// double-SHA256 checksum.
func CheckDecode(s string) ([]byte, error) {
	data, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(data) < 4 {
		return nil, ErrChecksumMismatch
	}
	payload, sum := data[:len(data)-4], data[len(data)-4:]
	want := checksum(payload)
	for i := range want {
		if sum[i] != want[i] {
			return nil, ErrChecksumMismatch
		}
	}
	return payload, nil
}

func checksum(payload []byte) [4]byte {
	first := digest.SHA256(payload)
	second := digest.SHA256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}
