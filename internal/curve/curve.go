// Package curve implements the secp256k1 elliptic curve over its prime
// field using affine coordinates. Clarity, not speed, is the goal: every
// operation is a direct transcription of the textbook formulas, built on
// math/big rather than a constant-time or Jacobian-coordinate curve
// library.
package curve

import "math/big"

// P is the secp256k1 field prime.
var P, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

// N is the secp256k1 group order.
var N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

var gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
var gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)

// Point is an affine secp256k1 point. A nil X (with Y also nil) denotes
// the point at infinity (the group identity).
type Point struct {
	X, Y *big.Int
}

// Generator returns the secp256k1 base point G.
func Generator() Point {
	return Point{X: new(big.Int).Set(gx), Y: new(big.Int).Set(gy)}
}

// IsInfinity reports whether p is the additive identity.
func (p Point) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

var infinity = Point{}

func mod(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, P)
}

// inverse returns the modular inverse of x mod P via Fermat's little
// theorem (x^(P-2) mod P), since P is prime.
func inverse(x *big.Int) *big.Int {
	exp := new(big.Int).Sub(P, big.NewInt(2))
	return new(big.Int).Exp(x, exp, P)
}

// Add returns p1 + p2 on the curve.
func Add(p1, p2 Point) Point {
	if p1.IsInfinity() {
		return p2
	}
	if p2.IsInfinity() {
		return p1
	}
	if p1.X.Cmp(p2.X) == 0 && p1.Y.Cmp(p2.Y) != 0 {
		return infinity
	}

	var lambda *big.Int
	if p1.X.Cmp(p2.X) == 0 {
		// Doubling: lambda = 3*x1^2 * (2*y1)^-1 mod P
		num := mod(new(big.Int).Mul(big.NewInt(3), new(big.Int).Mul(p1.X, p1.X)))
		den := inverse(mod(new(big.Int).Mul(big.NewInt(2), p1.Y)))
		lambda = mod(new(big.Int).Mul(num, den))
	} else {
		num := mod(new(big.Int).Sub(p2.Y, p1.Y))
		den := inverse(mod(new(big.Int).Sub(p2.X, p1.X)))
		lambda = mod(new(big.Int).Mul(num, den))
	}

	x3 := mod(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), p1.X), p2.X))
	y3 := mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p1.X, x3)), p1.Y))
	return Point{X: x3, Y: y3}
}

// ScalarMul computes k*point via right-to-left (least significant bit
// first) double-and-add. k is
// trusted to be a non-negative scalar; a zero scalar yields the identity.
func ScalarMul(k *big.Int, point Point) Point {
	result := infinity
	addend := point
	kk := new(big.Int).Set(k)
	zero := big.NewInt(0)
	for kk.Cmp(zero) > 0 {
		if kk.Bit(0) == 1 {
			result = Add(result, addend)
		}
		addend = Add(addend, addend)
		kk.Rsh(kk, 1)
	}
	return result
}

// PubkeyFromPriv computes the compressed public key for a 32-byte
// big-endian private key scalar. The caller must ensure 0 < k < N; a
// zero scalar is a programming error and panics rather than returning a
// silently wrong key.
func PubkeyFromPriv(priv []byte) [33]byte {
	k := new(big.Int).SetBytes(priv)
	if k.Sign() == 0 {
		panic("curve: zero private key scalar")
	}
	pt := ScalarMul(k, Generator())
	return Compress(pt)
}

// Compress serializes an affine point as a 33-byte SEC1 compressed
// public key: 0x02/0x03 prefix (even/odd y) followed by the 32-byte
// big-endian x coordinate.
func Compress(pt Point) [33]byte {
	var out [33]byte
	if pt.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xb := pt.X.Bytes()
	copy(out[33-len(xb):], xb)
	return out
}
