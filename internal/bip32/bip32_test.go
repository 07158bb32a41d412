package bip32

import (
	"encoding/hex"
	"testing"
)

// BIP-32 Test Vector 1, seed 000102030405060708090a0b0c0d0e0f. The
// expected private key and chain code bytes are identical regardless of
// which version prefix (mainnet/testnet) wraps them.
func TestMasterKeyFromSeedVector1(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}

	wantKey := "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
	wantChain := "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"

	if hex.EncodeToString(master.Key[:]) != wantKey {
		t.Fatalf("key = %x want %s", master.Key, wantKey)
	}
	if hex.EncodeToString(master.ChainCode[:]) != wantChain {
		t.Fatalf("chain code = %x want %s", master.ChainCode, wantChain)
	}
	if master.Version != VersionTprv {
		t.Fatalf("version = %x want %x", master.Version, VersionTprv)
	}
	if master.Depth != 0 {
		t.Fatalf("depth = %d want 0", master.Depth)
	}
}

func TestCKDprivHardenedChildVector1(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}

	child, err := CKDpriv(master, HardenedOffset+0)
	if err != nil {
		t.Fatal(err)
	}

	wantKey := "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea"
	wantChain := "47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141"

	if hex.EncodeToString(child.Key[:]) != wantKey {
		t.Fatalf("key = %x want %s", child.Key, wantKey)
	}
	if hex.EncodeToString(child.ChainCode[:]) != wantChain {
		t.Fatalf("chain code = %x want %s", child.ChainCode, wantChain)
	}
	if child.Depth != 1 {
		t.Fatalf("depth = %d want 1", child.Depth)
	}
	if !IsHardened(child.ChildNumber) {
		t.Fatal("expected hardened child number")
	}
}

func TestSerializeLength(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	ser := master.Serialize()
	if len(ser) != 78 {
		t.Fatalf("serialized length = %d want 78", len(ser))
	}

	pub := master.Neuter()
	pubSer := pub.Serialize()
	if len(pubSer) != 78 {
		t.Fatalf("pub serialized length = %d want 78", len(pubSer))
	}
	if pubSer[0] != 0x04 || pubSer[1] != 0x35 || pubSer[2] != 0x87 || pubSer[3] != 0xCF {
		t.Fatalf("unexpected tpub version bytes: %x", pubSer[:4])
	}
}

func TestParsePathValid(t *testing.T) {
	got, err := ParsePath("m/84h/1h/0h/0/0")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{84 + HardenedOffset, 1 + HardenedOffset, 0 + HardenedOffset, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestParsePathApostropheHardenedMarker(t *testing.T) {
	got, err := ParsePath("m/0'/1'")
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != HardenedOffset || got[1] != HardenedOffset+1 {
		t.Fatalf("got %v", got)
	}
}

func TestParsePathRejectsMissingRoot(t *testing.T) {
	if _, err := ParsePath("84h/1h/0h"); err == nil {
		t.Fatal("expected error for missing m root")
	}
}

func TestParsePathRejectsNonNumericComponent(t *testing.T) {
	if _, err := ParsePath("m/84h/1x/0h"); err == nil {
		t.Fatal("expected error for invalid component")
	}
}

func TestDeriveFromPathChainsCKDpriv(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	indices, err := ParsePath("m/0h")
	if err != nil {
		t.Fatal(err)
	}
	derived, err := DeriveFromPath(master, indices)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := CKDpriv(master, HardenedOffset)
	if err != nil {
		t.Fatal(err)
	}
	if derived.Key != direct.Key {
		t.Fatal("DeriveFromPath and direct CKDpriv disagree")
	}
}
