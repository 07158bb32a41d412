// Package wallet implements the HD synthesis orchestrator and the
// path-re-derivation operation that sit on top of the curve, digest,
// base58, bech32, bip32, bip39, and wif packages.
package wallet

import (
	"crypto/rand"
	"fmt"

	"github.com/rowbotony/croncoin-walletcore/internal/base58"
	"github.com/rowbotony/croncoin-walletcore/internal/bech32"
	"github.com/rowbotony/croncoin-walletcore/internal/bip32"
	"github.com/rowbotony/croncoin-walletcore/internal/bip39"
	"github.com/rowbotony/croncoin-walletcore/internal/curve"
	"github.com/rowbotony/croncoin-walletcore/internal/digest"
	"github.com/rowbotony/croncoin-walletcore/internal/wif"
)

// DefaultHRP is the bech32 human-readable part this wallet core targets.
// Project-specific: a consumer on a different chain must override it, as
// an address with the wrong HRP is unspendable.
const DefaultHRP = "crnrt"

// DefaultPath is the derivation path used when a caller does not supply
// one.
const DefaultPath = "m/84h/1h/0h/0/0"

// DerivationStep is one node along a synthesized path, including the
// node at "m" itself.
type DerivationStep struct {
	Path string
	Xprv string
	Xpub string
}

// Result is the full output of Synthesize.
type Result struct {
	EntropyHex      string
	EntropyBits     int
	Mnemonic        string
	SeedHex         string
	MasterXprv      string
	MasterXpub      string
	DerivationPath  string
	DerivationChain []DerivationStep
	PrivateKeyWIF   string
	PublicKeyHex    string
	Address         string
}

// Options configures Synthesize. Entropy is a test seam: when nil,
// EntropyBits/8 bytes are drawn from the platform CSPRNG; when set, it is
// used verbatim and must be EntropyBits/8 bytes long.
type Options struct {
	EntropyBits int
	Passphrase  string
	Path        string
	HRP         string
	Entropy     []byte
}

func validEntropyBits(bits int) bool {
	switch bits {
	case 128, 160, 192, 224, 256:
		return true
	default:
		return false
	}
}

// Synthesize runs the full HD wallet generation pipeline: entropy draw,
// mnemonic, seed, master key, per-level derivation along path, and the
// leaf WIF/pubkey/address.
func Synthesize(opts Options) (*Result, error) {
	if !validEntropyBits(opts.EntropyBits) {
		return nil, newError(InvalidParameter, "entropy_bits must be one of 128, 160, 192, 224, 256", nil)
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	hrp := opts.HRP
	if hrp == "" {
		hrp = DefaultHRP
	}

	entropy := opts.Entropy
	if entropy == nil {
		entropy = make([]byte, opts.EntropyBits/8)
		if _, err := rand.Read(entropy); err != nil {
			return nil, newError(EntropySourceFailure, "failed to read from platform randomness source", err)
		}
	} else if len(entropy) != opts.EntropyBits/8 {
		return nil, newError(InvalidParameter, "supplied entropy length does not match entropy_bits", nil)
	}

	mnemonic, err := bip39.EntropyToMnemonic(entropy)
	if err != nil {
		return nil, newError(InvalidParameter, "entropy could not be converted to a mnemonic", err)
	}

	seed := bip39.MnemonicToSeed(mnemonic, opts.Passphrase)

	master, err := bip32.MasterKeyFromSeed(seed)
	if err != nil {
		return nil, newError(DerivationFailure, "master key derivation failed", err)
	}

	masterXprv := base58.CheckEncode(master.Serialize())
	masterXpub := base58.CheckEncode(master.Neuter().Serialize())

	indices, err := bip32.ParsePath(path)
	if err != nil {
		return nil, newError(InvalidPath, "could not parse derivation path", err)
	}

	chain := []DerivationStep{{Path: "m", Xprv: masterXprv, Xpub: masterXpub}}
	current := master
	pathAccum := "m"
	for i, idx := range indices {
		child, err := bip32.CKDpriv(current, idx)
		if err != nil {
			return nil, newError(DerivationFailure, fmt.Sprintf("child derivation failed at index %d", i), err)
		}
		current = child
		pathAccum += "/" + pathSegment(idx)
		chain = append(chain, DerivationStep{
			Path: pathAccum,
			Xprv: base58.CheckEncode(current.Serialize()),
			Xpub: base58.CheckEncode(current.Neuter().Serialize()),
		})
	}

	leafWIF, err := wif.EncodeTestnet(current.Key[:])
	if err != nil {
		return nil, newError(DerivationFailure, "could not encode leaf private key as WIF", err)
	}

	pubkey := curve.PubkeyFromPriv(current.Key[:])
	hash160 := digest.Hash160(pubkey[:])
	address, err := bech32.EncodeWitnessProgram(hrp, hash160[:])
	if err != nil {
		return nil, newError(InvalidEncoding, "could not encode witness program address", err)
	}

	return &Result{
		EntropyHex:      fmt.Sprintf("%x", entropy),
		EntropyBits:     opts.EntropyBits,
		Mnemonic:        mnemonic,
		SeedHex:         fmt.Sprintf("%x", seed),
		MasterXprv:      masterXprv,
		MasterXpub:      masterXpub,
		DerivationPath:  path,
		DerivationChain: chain,
		PrivateKeyWIF:   leafWIF,
		PublicKeyHex:    fmt.Sprintf("%x", pubkey[:]),
		Address:         address,
	}, nil
}

func pathSegment(idx uint32) string {
	if bip32.IsHardened(idx) {
		return fmt.Sprintf("%dh", idx-bip32.HardenedOffset)
	}
	return fmt.Sprintf("%d", idx)
}
