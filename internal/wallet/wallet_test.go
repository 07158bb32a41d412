package wallet

import (
	"encoding/hex"
	"strings"
	"testing"
)

func zeroEntropy(n int) []byte {
	return make([]byte, n)
}

func TestSynthesizeFixedEntropyScenario1(t *testing.T) {
	// Published BIP-39 vector: all-zero 128-bit entropy with passphrase
	// "TREZOR" gives seed c55257...3b04.
	result, err := Synthesize(Options{
		EntropyBits: 128,
		Passphrase:  "TREZOR",
		Path:        "m/0h",
		Entropy:     zeroEntropy(16),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(result.Mnemonic, "abandon abandon abandon") {
		t.Fatalf("mnemonic = %q", result.Mnemonic)
	}
	wantSeed := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
	if result.SeedHex != wantSeed {
		t.Fatalf("seed hex = %s want %s", result.SeedHex, wantSeed)
	}
}

func TestSynthesizeScenario2FormatChecks(t *testing.T) {
	result, err := Synthesize(Options{
		EntropyBits: 128,
		Passphrase:  "",
		Path:        DefaultPath,
		Entropy:     zeroEntropy(16),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(result.PrivateKeyWIF, "c") {
		t.Fatalf("WIF = %s, expected testnet compressed prefix 'c'", result.PrivateKeyWIF)
	}
	if !strings.HasPrefix(result.Address, "crnrt1q") {
		t.Fatalf("address = %s, expected crnrt1q prefix", result.Address)
	}
	if len(result.Address) < 42 || len(result.Address) > 62 {
		t.Fatalf("address length = %d, expected 42-62", len(result.Address))
	}
	if len(result.PublicKeyHex) != 66 {
		t.Fatalf("pubkey hex length = %d, expected 66", len(result.PublicKeyHex))
	}
	if !strings.HasPrefix(result.PublicKeyHex, "02") && !strings.HasPrefix(result.PublicKeyHex, "03") {
		t.Fatalf("pubkey hex = %s, expected 02/03 prefix", result.PublicKeyHex)
	}
}

func TestSynthesizeRejectsMalformedPath(t *testing.T) {
	_, err := Synthesize(Options{
		EntropyBits: 128,
		Path:        "m/84h/1x/0h",
		Entropy:     zeroEntropy(16),
	})
	walletErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if walletErr.Kind != InvalidPath {
		t.Fatalf("kind = %v want InvalidPath", walletErr.Kind)
	}
}

func TestDeriveWIFMatchesSynthesizeLeaf(t *testing.T) {
	result, err := Synthesize(Options{
		EntropyBits: 128,
		Path:        DefaultPath,
		Entropy:     zeroEntropy(16),
	})
	if err != nil {
		t.Fatal(err)
	}

	redoneWIF, err := DeriveWIF(result.MasterXprv, DefaultPath)
	if err != nil {
		t.Fatal(err)
	}
	if redoneWIF != result.PrivateKeyWIF {
		t.Fatalf("re-derived WIF = %s want %s", redoneWIF, result.PrivateKeyWIF)
	}
}

func TestSynthesizeRejectsBadEntropySize(t *testing.T) {
	_, err := Synthesize(Options{EntropyBits: 200})
	walletErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if walletErr.Kind != InvalidParameter {
		t.Fatalf("kind = %v want InvalidParameter", walletErr.Kind)
	}
}

func TestDeriveWIFRejectsWrongVersion(t *testing.T) {
	result, err := Synthesize(Options{EntropyBits: 128, Path: DefaultPath, Entropy: zeroEntropy(16)})
	if err != nil {
		t.Fatal(err)
	}
	// master_xpub is a tpub, not a tprv: must be rejected.
	_, err = DeriveWIF(result.MasterXpub, DefaultPath)
	walletErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if walletErr.Kind != InvalidEncoding {
		t.Fatalf("kind = %v want InvalidEncoding", walletErr.Kind)
	}
}

func TestDeriveWIFRejectsBadBase58(t *testing.T) {
	_, err := DeriveWIF("not-a-valid-extended-key-0OIl", DefaultPath)
	walletErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if walletErr.Kind != InvalidEncoding {
		t.Fatalf("kind = %v want InvalidEncoding", walletErr.Kind)
	}
}

func TestSynthesizeDerivationChainStartsAtMasterLevel(t *testing.T) {
	result, err := Synthesize(Options{EntropyBits: 128, Path: "m/0h/1", Entropy: zeroEntropy(16)})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.DerivationChain) != 3 {
		t.Fatalf("chain length = %d want 3", len(result.DerivationChain))
	}
	if result.DerivationChain[0].Path != "m" {
		t.Fatalf("chain[0].Path = %s want m", result.DerivationChain[0].Path)
	}
	if result.DerivationChain[0].Xprv != result.MasterXprv {
		t.Fatal("chain[0].Xprv should equal MasterXprv")
	}
	if result.DerivationChain[1].Path != "m/0h" {
		t.Fatalf("chain[1].Path = %s want m/0h", result.DerivationChain[1].Path)
	}
	if result.DerivationChain[2].Path != "m/0h/1" {
		t.Fatalf("chain[2].Path = %s want m/0h/1", result.DerivationChain[2].Path)
	}
}

func TestEntropyHexRoundTrip(t *testing.T) {
	entropy := zeroEntropy(32)
	entropy[0] = 0xff
	result, err := Synthesize(Options{EntropyBits: 256, Path: "m", Entropy: entropy})
	if err != nil {
		t.Fatal(err)
	}
	got, err := hex.DecodeString(result.EntropyHex)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 32 || got[0] != 0xff {
		t.Fatalf("entropy hex round trip mismatch: %x", got)
	}
}
