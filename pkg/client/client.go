// Package client provides a public API for the wallet-key stack,
// intended for consumption by other Go applications.
package client

import (
	"github.com/rowbotony/croncoin-walletcore/internal/wallet"
)

// Result re-exports the synthesis pipeline's output for external callers.
type Result = wallet.Result

// DerivationStep re-exports one node of the synthesized derivation chain.
type DerivationStep = wallet.DerivationStep

// Options re-exports the Synthesize configuration struct.
type Options = wallet.Options

// ErrorKind re-exports the typed error classification.
type ErrorKind = wallet.ErrorKind

const (
	InvalidEncoding      = wallet.InvalidEncoding
	InvalidPath          = wallet.InvalidPath
	InvalidParameter     = wallet.InvalidParameter
	DerivationFailure    = wallet.DerivationFailure
	EntropySourceFailure = wallet.EntropySourceFailure
)

// DefaultHRP and DefaultPath re-export the wallet package's defaults.
const (
	DefaultHRP  = wallet.DefaultHRP
	DefaultPath = wallet.DefaultPath
)

// GenerateWallet synthesizes a fresh HD wallet end to end.
func GenerateWallet(opts Options) (*Result, error) {
	return wallet.Synthesize(opts)
}

// DeriveWIF reconstructs a leaf private key's WIF from a master extended
// private key string and a derivation path.
func DeriveWIF(masterTprv, path string) (string, error) {
	return wallet.DeriveWIF(masterTprv, path)
}
