package digest

import "encoding/binary"

// RIPEMD-160, implemented directly per spec: five parallel rounds with
// the standard K_LEFT/K_RIGHT constants, the r/r' message-word
// permutations, the s/s' rotation amounts, and the round functions
// {XOR, (X∧Y)∨(¬X∧Z), (X∨¬Y)⊕Z, (X∧Z)∨(Y∧¬Z), X⊕(Y∨¬Z)}. Output is
// little-endian. Shipped unconditionally rather than probed at runtime,
// since some platforms drop ripemd160 from their default hash list.

var ripemdKL = [5]uint32{0x00000000, 0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xA953FD4E}
var ripemdKR = [5]uint32{0x50A28BE6, 0x5C4DD124, 0x6D703EF3, 0x7A6D76E9, 0x00000000}

var ripemdRL = [80]uint32{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var ripemdRR = [80]uint32{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var ripemdSL = [80]uint32{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var ripemdSR = [80]uint32{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

func ripemdF(j int, x, y, z uint32) uint32 {
	switch {
	case j < 16:
		return x ^ y ^ z
	case j < 32:
		return (x & y) | (^x & z)
	case j < 48:
		return (x | ^y) ^ z
	case j < 64:
		return (x & z) | (y &^ z)
	default:
		return x ^ (y | ^z)
	}
}

func rol(x uint32, n uint32) uint32 {
	return (x << n) | (x >> (32 - n))
}

func ripemdPad(message []byte) []byte {
	l := uint64(len(message)) * 8
	msg := append([]byte{}, message...)
	msg = append(msg, 0x80)
	for len(msg)%64 != 56 {
		msg = append(msg, 0)
	}
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], l)
	return append(msg, lenBytes[:]...)
}

// RIPEMD160 computes the RIPEMD-160 digest of data.
func RIPEMD160(data []byte) [20]byte {
	h0, h1, h2, h3, h4 := uint32(0x67452301), uint32(0xEFCDAB89), uint32(0x98BADCFE), uint32(0x10325476), uint32(0xC3D2E1F0)

	msg := ripemdPad(data)
	var x [16]uint32
	for off := 0; off < len(msg); off += 64 {
		block := msg[off : off+64]
		for j := 0; j < 16; j++ {
			x[j] = binary.LittleEndian.Uint32(block[j*4:])
		}

		al, bl, cl, dl, el := h0, h1, h2, h3, h4
		ar, br, cr, dr, er := h0, h1, h2, h3, h4

		for j := 0; j < 80; j++ {
			round := j / 16

			t := al + ripemdF(j, bl, cl, dl) + x[ripemdRL[j]] + ripemdKL[round]
			t = rol(t, ripemdSL[j]) + el
			al, el, dl, cl, bl = el, dl, rol(cl, 10), bl, t

			t = ar + ripemdF(79-j, br, cr, dr) + x[ripemdRR[j]] + ripemdKR[round]
			t = rol(t, ripemdSR[j]) + er
			ar, er, dr, cr, br = er, dr, rol(cr, 10), br, t
		}

		t := h1 + cl + dr
		h1 = h2 + dl + er
		h2 = h3 + el + ar
		h3 = h4 + al + br
		h4 = h0 + bl + cr
		h0 = t
	}

	var out [20]byte
	binary.LittleEndian.PutUint32(out[0:], h0)
	binary.LittleEndian.PutUint32(out[4:], h1)
	binary.LittleEndian.PutUint32(out[8:], h2)
	binary.LittleEndian.PutUint32(out[12:], h3)
	binary.LittleEndian.PutUint32(out[16:], h4)
	return out
}
