package curve

import (
	"encoding/hex"
	"math/big"
	"testing"
)

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	// y^2 == x^3 + 7 mod P
	lhs := mod(new(big.Int).Mul(g.Y, g.Y))
	rhs := mod(new(big.Int).Add(new(big.Int).Exp(g.X, big.NewInt(3), P), big.NewInt(7)))
	if lhs.Cmp(rhs) != 0 {
		t.Fatal("generator does not satisfy curve equation")
	}
}

func TestScalarMulIdentity(t *testing.T) {
	g := Generator()
	twoG := Add(g, g)
	viaScalar := ScalarMul(big.NewInt(2), g)
	if twoG.X.Cmp(viaScalar.X) != 0 || twoG.Y.Cmp(viaScalar.Y) != 0 {
		t.Fatal("ScalarMul(2, G) != Add(G, G)")
	}
}

func TestAddInverseYieldsInfinity(t *testing.T) {
	g := Generator()
	neg := Point{X: g.X, Y: mod(new(big.Int).Neg(g.Y))}
	sum := Add(g, neg)
	if !sum.IsInfinity() {
		t.Fatal("P + (-P) should be infinity")
	}
}

func TestPubkeyFromPrivKnownVector(t *testing.T) {
	// Private key of 1 => public key is the generator itself, compressed.
	priv := make([]byte, 32)
	priv[31] = 1
	pub := PubkeyFromPriv(priv)
	want := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	if hex.EncodeToString(pub[:]) != want {
		t.Fatalf("got %x want %s", pub, want)
	}
}

func TestPubkeyFromZeroPrivPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero scalar")
		}
	}()
	PubkeyFromPriv(make([]byte, 32))
}
