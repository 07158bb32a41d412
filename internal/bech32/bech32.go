// Package bech32 implements the BIP-173 Bech32 encoding used for native
// SegWit addresses: HRP expansion, the generator-polynomial checksum,
// and power-of-two bit regrouping.
package bech32

import (
	"errors"
	"strings"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var generators = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// ErrInvalidBits is returned by ConvertBits when padding is disallowed
// and the input cannot be evenly regrouped.
var ErrInvalidBits = errors.New("bech32: invalid bit grouping")

func polymod(values []int) uint32 {
	chk := uint32(1)
	for _, v := range values {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= generators[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []int {
	out := make([]int, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, int(hrp[i]>>5))
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, int(hrp[i]&31))
	}
	return out
}

func createChecksum(hrp string, data []int) []int {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ 1
	checksum := make([]int, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = int((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// Encode returns the bech32 string HRP||"1"||data||checksum for the
// given human-readable part and 5-bit data values.
func Encode(hrp string, data []int) string {
	combined := append(append([]int{}, data...), createChecksum(hrp, data)...)
	var b strings.Builder
	b.WriteString(hrp)
	b.WriteByte('1')
	for _, d := range combined {
		b.WriteByte(charset[d])
	}
	return b.String()
}

// ConvertBits regroups data (each element holding fromBits bits) into
// groups of toBits bits. When pad is true the final group is
// zero-padded on the low end, as required for the witness program
// (8-bit bytes -> 5-bit groups). When pad is false, a non-empty leftover
// or a non-zero pad value is an error.
func ConvertBits(data []int, fromBits, toBits uint, pad bool) ([]int, error) {
	acc := 0
	bits := uint(0)
	var ret []int
	maxv := (1 << toBits) - 1
	for _, value := range data {
		acc = (acc << fromBits) | value
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, (acc>>bits)&maxv)
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, (acc<<(toBits-bits))&maxv)
		}
	} else if bits >= fromBits || ((acc<<(toBits-bits))&maxv) != 0 {
		return nil, ErrInvalidBits
	}
	return ret, nil
}

// EncodeWitnessProgram builds a P2WPKH (witness version 0) bech32
// address from a 20-byte HASH160 witness program.
func EncodeWitnessProgram(hrp string, program []byte) (string, error) {
	toBytes := make([]int, len(program))
	for i, b := range program {
		toBytes[i] = int(b)
	}
	data5, err := ConvertBits(toBytes, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, append([]int{0}, data5...)), nil
}
