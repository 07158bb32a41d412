package wallet

import (
	"encoding/binary"

	"github.com/rowbotony/croncoin-walletcore/internal/base58"
	"github.com/rowbotony/croncoin-walletcore/internal/bip32"
	"github.com/rowbotony/croncoin-walletcore/internal/wif"
)

// DeriveWIF reconstructs a leaf private key's WIF from a caller-supplied
// master extended private key string and a derivation path, without
// going through Synthesize. The master key is parsed by base58check
// decoding and slicing: chain code at bytes 13..45, key at 46..78
// (byte 45 is the private-key serialization's leading 0x00). The
// version field is validated as tprv before any slicing happens.
func DeriveWIF(masterTprv string, path string) (string, error) {
	payload, err := base58.CheckDecode(masterTprv)
	if err != nil {
		return "", newError(InvalidEncoding, "master extended key failed base58check decoding", err)
	}
	if len(payload) != 78 {
		return "", newError(InvalidEncoding, "master extended key is not 78 bytes", nil)
	}

	version := binary.BigEndian.Uint32(payload[0:4])
	if version != bip32.VersionTprv {
		return "", newError(InvalidEncoding, "master extended key is not a tprv", nil)
	}

	depth := payload[4]
	var parentFP [4]byte
	copy(parentFP[:], payload[5:9])
	childNumber := binary.BigEndian.Uint32(payload[9:13])

	var chainCode [32]byte
	copy(chainCode[:], payload[13:45])

	// payload[45] is the 0x00 private-key prefix; the 32-byte key follows.
	var key [32]byte
	copy(key[:], payload[46:78])

	master := &bip32.ExtendedKey{
		Version:     version,
		Depth:       depth,
		ParentFP:    parentFP,
		ChildNumber: childNumber,
		ChainCode:   chainCode,
		Key:         key,
		IsPrivate:   true,
	}

	indices, err := bip32.ParsePath(path)
	if err != nil {
		return "", newError(InvalidPath, "could not parse derivation path", err)
	}

	leaf, err := bip32.DeriveFromPath(master, indices)
	if err != nil {
		return "", newError(DerivationFailure, "child derivation failed", err)
	}

	leafWIF, err := wif.EncodeTestnet(leaf.Key[:])
	if err != nil {
		return "", newError(DerivationFailure, "could not encode leaf private key as WIF", err)
	}
	return leafWIF, nil
}
