// Package digest provides the hashing primitives the wallet-key stack
// needs: HMAC-SHA512, a single-block PBKDF2-HMAC-SHA512, and HASH160
// (RIPEMD-160 of SHA-256). SHA-256 and HMAC-SHA512 come from the Go
// standard library; RIPEMD-160 is implemented from scratch in
// ripemd160.go since the standard library does not ship it and the core
// may not depend on an external crypto package for it.
package digest

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
)

// HMACSHA512 returns HMAC-SHA512(key, data).
func HMACSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// PBKDF2HMACSHA512 derives dkLen bytes via PBKDF2-HMAC-SHA512. Only the
// one-block case (dkLen <= 64) is implemented, since BIP-39 always calls
// this with dkLen == hLen == 64.
func PBKDF2HMACSHA512(password, salt []byte, iterations, dkLen int) []byte {
	if dkLen > sha512.Size {
		panic("digest: PBKDF2HMACSHA512 only supports single-block output")
	}

	// First iteration: U_1 = HMAC(password, salt || INT(1))
	block := append(append([]byte{}, salt...), 0, 0, 0, 1)
	u := HMACSHA512(password, block)
	t := append([]byte{}, u...)

	for i := 1; i < iterations; i++ {
		u = HMACSHA512(password, u)
		for j := range t {
			t[j] ^= u[j]
		}
	}

	return t[:dkLen]
}

// SHA256 returns SHA-256(data).
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Hash160 returns RIPEMD160(SHA256(data)).
func Hash160(data []byte) [20]byte {
	sha := sha256.Sum256(data)
	return RIPEMD160(sha[:])
}
