// Package wif implements Wallet Import Format encoding for private
// keys: a version byte, the 32-byte key, an optional compression flag,
// base58check-encoded.
package wif

import (
	"errors"

	"github.com/rowbotony/croncoin-walletcore/internal/base58"
)

// VersionTestnet is the WIF version byte for testnet private keys.
const VersionTestnet byte = 0xEF

// CompressedFlag marks the encoded key as corresponding to a compressed
// public key.
const CompressedFlag byte = 0x01

// ErrInvalidKeyLength is returned when the private key is not 32 bytes.
var ErrInvalidKeyLength = errors.New("wif: private key must be 32 bytes")

// Encode returns the compressed-pubkey WIF encoding of a 32-byte private
// key under the given version byte.
func Encode(version byte, key []byte) (string, error) {
	if len(key) != 32 {
		return "", ErrInvalidKeyLength
	}
	payload := make([]byte, 0, 34)
	payload = append(payload, version)
	payload = append(payload, key...)
	payload = append(payload, CompressedFlag)
	return base58.CheckEncode(payload), nil
}

// EncodeTestnet returns the testnet, compressed-pubkey WIF encoding of key.
func EncodeTestnet(key []byte) (string, error) {
	return Encode(VersionTestnet, key)
}

// Decode reverses Encode, returning the version byte and 32-byte key.
// Uncompressed (33-byte payload) keys are rejected since this wallet
// core only ever produces compressed keys.
func Decode(s string) (version byte, key []byte, err error) {
	payload, err := base58.CheckDecode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(payload) != 34 || payload[33] != CompressedFlag {
		return 0, nil, errors.New("wif: expected 34-byte compressed payload")
	}
	return payload[0], payload[1:33], nil
}
