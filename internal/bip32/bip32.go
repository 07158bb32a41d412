// Package bip32 implements hierarchical deterministic key derivation:
// master key generation from a seed, child key derivation (CKDpriv),
// and extended-key (tprv/tpub) serialization for the testnet version
// bytes this wallet core targets.
package bip32

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/rowbotony/croncoin-walletcore/internal/curve"
	"github.com/rowbotony/croncoin-walletcore/internal/digest"
)

// Testnet extended-key version bytes.
const (
	VersionTprv uint32 = 0x04358394
	VersionTpub uint32 = 0x043587CF
)

// HardenedOffset is added to a child index to request hardened derivation.
const HardenedOffset uint32 = 0x80000000

// ErrDerivationFailure is returned when a derived scalar falls outside
// the valid range [1, N-1]; per BIP-32 the caller should retry with the
// next index, but this implementation treats it as a terminal failure
// since it requires re-deriving from the parent with a different index.
var ErrDerivationFailure = errors.New("bip32: invalid derived key, retry with next index")

// ExtendedKey is a node in an HD key tree: either a private node (Key
// holds the 32-byte private scalar) or, after stripping the private
// material, a public-only node.
type ExtendedKey struct {
	Version     uint32
	Depth       byte
	ParentFP    [4]byte
	ChildNumber uint32
	ChainCode   [32]byte
	Key         [32]byte // private scalar, big-endian
	IsPrivate   bool
}

// MasterKeyFromSeed derives the master extended private key from a BIP-39
// (or arbitrary) seed via HMAC-SHA512("Bitcoin seed", seed): the left 32
// bytes become the master private key, the right 32 the master chain code.
func MasterKeyFromSeed(seed []byte) (*ExtendedKey, error) {
	i := digest.HMACSHA512([]byte("Bitcoin seed"), seed)
	il, ir := i[:32], i[32:]

	k := new(big.Int).SetBytes(il)
	if k.Sign() == 0 || k.Cmp(curve.N) >= 0 {
		return nil, ErrDerivationFailure
	}

	key := &ExtendedKey{
		Version:   VersionTprv,
		Depth:     0,
		ParentFP:  [4]byte{0, 0, 0, 0},
		IsPrivate: true,
	}
	copy(key.Key[:], il)
	copy(key.ChainCode[:], ir)
	return key, nil
}

func (k *ExtendedKey) compressedPubkey() [33]byte {
	return curve.PubkeyFromPriv(k.Key[:])
}

func fingerprint(compressedPub [33]byte) [4]byte {
	h := digest.Hash160(compressedPub[:])
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// IsHardened reports whether childIndex requests hardened derivation.
func IsHardened(childIndex uint32) bool {
	return childIndex >= HardenedOffset
}

// CKDpriv derives the private child key at childIndex from parent. Per
// BIP-32: hardened children (index >= 2^31) hash 0x00 || parent key ||
// index; normal children hash the parent's compressed public key ||
// index.
func CKDpriv(parent *ExtendedKey, childIndex uint32) (*ExtendedKey, error) {
	if !parent.IsPrivate {
		return nil, errors.New("bip32: CKDpriv requires a private parent key")
	}

	var data []byte
	if IsHardened(childIndex) {
		data = make([]byte, 0, 37)
		data = append(data, 0x00)
		data = append(data, parent.Key[:]...)
	} else {
		pub := parent.compressedPubkey()
		data = make([]byte, 0, 37)
		data = append(data, pub[:]...)
	}
	var idxBuf [4]byte
	binary.BigEndian.PutUint32(idxBuf[:], childIndex)
	data = append(data, idxBuf[:]...)

	i := digest.HMACSHA512(parent.ChainCode[:], data)
	il, ir := i[:32], i[32:]

	ilNum := new(big.Int).SetBytes(il)
	if ilNum.Cmp(curve.N) >= 0 {
		return nil, ErrDerivationFailure
	}

	parentKeyNum := new(big.Int).SetBytes(parent.Key[:])
	childNum := new(big.Int).Add(ilNum, parentKeyNum)
	childNum.Mod(childNum, curve.N)
	if childNum.Sign() == 0 {
		return nil, ErrDerivationFailure
	}

	child := &ExtendedKey{
		Version:     VersionTprv,
		Depth:       parent.Depth + 1,
		ParentFP:    fingerprint(parent.compressedPubkey()),
		ChildNumber: childIndex,
		IsPrivate:   true,
	}
	copy(child.ChainCode[:], ir)
	childBytes := childNum.Bytes()
	copy(child.Key[32-len(childBytes):], childBytes)
	return child, nil
}

// Serialize encodes the extended key as the standard 78-byte payload:
// version(4) || depth(1) || parent fingerprint(4) || child number(4) ||
// chain code(32) || key material(33), where private nodes prefix the
// key with 0x00 and public nodes use the compressed public key.
func (k *ExtendedKey) Serialize() []byte {
	out := make([]byte, 0, 78)
	var buf4 [4]byte

	binary.BigEndian.PutUint32(buf4[:], k.Version)
	out = append(out, buf4[:]...)
	out = append(out, k.Depth)
	out = append(out, k.ParentFP[:]...)
	binary.BigEndian.PutUint32(buf4[:], k.ChildNumber)
	out = append(out, buf4[:]...)
	out = append(out, k.ChainCode[:]...)

	if k.IsPrivate {
		out = append(out, 0x00)
		out = append(out, k.Key[:]...)
	} else {
		pub := k.compressedPubkey()
		out = append(out, pub[:]...)
	}
	return out
}

// Neuter returns a public-only copy of k: the tpub counterpart used for
// watch-only derivation and serialization.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	pub := *k
	pub.Version = VersionTpub
	pub.IsPrivate = false
	return &pub
}
