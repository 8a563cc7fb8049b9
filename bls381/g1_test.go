package bls381

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/f3rmion/pbc/group"
)

func TestG1Point(t *testing.T) {
	g := &G1{}

	t.Run("AddSub", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		Q, _ := g.RandomPoint(rand.Reader)

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)

		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		negP := g.NewPoint().Negate(P)

		result := g.NewPoint().Add(P, negP)

		if !result.IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("Double", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)

		doubled := g.NewPoint().Double(P)
		summed := g.NewPoint().Add(P, P)

		if !doubled.Equal(summed) {
			t.Error("2*P != P+P")
		}
	})

	t.Run("ScalarMultInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		P, _ := g.RandomPoint(rand.Reader)
		Q := g.NewPoint().ScalarMult(a, P)
		Q = g.NewPoint().ScalarMult(aInv, Q)

		if !Q.Equal(P) {
			t.Error("(a^-1)*(a*P) != P")
		}
	})

	t.Run("GeneratorOrder", func(t *testing.T) {
		// (r-1)*G + G must wrap around to the identity.
		one := g.NewScalar().SetUint64(1)
		orderMinusOne := g.NewScalar().Negate(one)

		P := g.NewPoint().ScalarMult(orderMinusOne, g.Generator())
		P.Add(P, g.Generator())

		if !P.IsIdentity() {
			t.Error("r*G != identity")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewPoint()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}
		if !identity.IsValid() {
			t.Error("identity should be a group member")
		}

		gen := g.Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
		if !gen.IsValid() {
			t.Error("generator should be valid")
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		if !P.Normalize().Equal(P) {
			t.Error("normalization should not change the element")
		}
	})
}

func TestG1Codec(t *testing.T) {
	g := &G1{}

	t.Run("BytesRoundtrip", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)

		enc := P.Bytes()
		if len(enc) != P.EncodedSize() {
			t.Errorf("Bytes returned %d bytes, EncodedSize says %d", len(enc), P.EncodedSize())
		}

		restored, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
		if !restored.IsValid() {
			t.Error("decoded honest point should be valid")
		}
	})

	t.Run("CompressedRoundtrip", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)

		enc := P.BytesCompressed()
		if len(enc) != P.EncodedSize()/2 {
			t.Errorf("compressed encoding is %d bytes, want %d", len(enc), P.EncodedSize()/2)
		}

		restored, err := g.NewPoint().SetBytesCompressed(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(P) {
			t.Error("compressed roundtrip failed")
		}
	})

	t.Run("IdentityEncoding", func(t *testing.T) {
		identity := g.NewPoint()

		enc := identity.Bytes()
		want := make([]byte, identity.EncodedSize())
		want[0] = flagInfinity
		if !bytes.Equal(enc, want) {
			t.Errorf("identity encoding = %x..., want infinity flag and zeros", enc[:4])
		}

		restored, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.IsIdentity() {
			t.Error("decoded identity should be identity")
		}

		restored, err = g.NewPoint().SetBytesCompressed(identity.BytesCompressed())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.IsIdentity() {
			t.Error("compressed identity roundtrip failed")
		}
	})

	t.Run("WrongLength", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)
		enc := P.Bytes()

		_, err := g.NewPoint().SetBytes(enc[:len(enc)-1])
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode for truncated input, got %v", err)
		}

		_, err = g.NewPoint().SetBytesCompressed(enc)
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode for oversized compressed input, got %v", err)
		}
	})

	t.Run("OffCurveDecodesButInvalid", func(t *testing.T) {
		enc := g.Generator().Bytes()
		enc[len(enc)-1] ^= 1

		P, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal("structural decode should accept an off-curve point:", err)
		}
		if P.IsValid() {
			t.Error("off-curve point should not be valid")
		}
	})

	t.Run("CoordinateTooLarge", func(t *testing.T) {
		enc := make([]byte, g.NewPoint().EncodedSize())
		fp.Modulus().FillBytes(enc[:fp.Bytes])
		enc[len(enc)-1] = 1

		_, err := g.NewPoint().SetBytes(enc)
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode for coordinate >= p, got %v", err)
		}
	})

	t.Run("BadFlags", func(t *testing.T) {
		enc := g.Generator().Bytes()
		enc[0] |= 0x80

		_, err := g.NewPoint().SetBytes(enc)
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode for compression flag, got %v", err)
		}

		bad := make([]byte, g.NewPoint().EncodedSize())
		bad[0] = flagInfinity
		bad[1] = 1
		_, err = g.NewPoint().SetBytes(bad)
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode for dirty infinity encoding, got %v", err)
		}

		_, err = g.NewPoint().SetBytes(make([]byte, g.NewPoint().EncodedSize()))
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode for unflagged zero encoding, got %v", err)
		}
	})

	t.Run("Put", func(t *testing.T) {
		P, _ := g.RandomPoint(rand.Reader)

		dst := make([]byte, P.EncodedSize())
		n, err := P.Put(dst)
		if err != nil {
			t.Fatal(err)
		}
		if n != P.EncodedSize() {
			t.Errorf("Put wrote %d bytes, want %d", n, P.EncodedSize())
		}
		if !bytes.Equal(dst, P.Bytes()) {
			t.Error("Put output differs from Bytes")
		}

		_, err = P.Put(make([]byte, P.EncodedSize()-1))
		if !errors.Is(err, group.ErrBufferTooSmall) {
			t.Errorf("expected ErrBufferTooSmall, got %v", err)
		}
	})
}

func TestG1Group(t *testing.T) {
	g := &G1{}

	t.Run("HashToPoint", func(t *testing.T) {
		dst := []byte("pbc-test-g1")

		P, err := g.HashToPoint([]byte("message"), dst)
		if err != nil {
			t.Fatal(err)
		}
		if !P.IsValid() {
			t.Error("hashed point should be valid")
		}

		Q, _ := g.HashToPoint([]byte("message"), dst)
		if !P.Equal(Q) {
			t.Error("HashToPoint should be deterministic")
		}

		R, _ := g.HashToPoint([]byte("message"), []byte("pbc-test-other"))
		if P.Equal(R) {
			t.Error("different tags should give different points")
		}
	})

	t.Run("RandomPoint", func(t *testing.T) {
		P, err := g.RandomPoint(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		if !P.IsValid() {
			t.Error("random point should be valid")
		}

		Q, _ := g.RandomPoint(rand.Reader)
		if P.Equal(Q) {
			t.Error("two random points should not collide")
		}
	})

	t.Run("MultiScalarMult", func(t *testing.T) {
		const n = 5
		scalars := make([]group.Scalar, n)
		points := make([]group.Point, n)
		for i := range scalars {
			scalars[i], _ = g.RandomScalar(rand.Reader)
			points[i], _ = g.RandomPoint(rand.Reader)
		}

		batched, err := g.MultiScalarMult(scalars, points)
		if err != nil {
			t.Fatal(err)
		}

		expected := g.NewPoint()
		for i := range scalars {
			term := g.NewPoint().ScalarMult(scalars[i], points[i])
			expected.Add(expected, term)
		}

		if !batched.Equal(expected) {
			t.Error("batched result differs from pointwise sum")
		}
	})

	t.Run("MultiScalarMultEmpty", func(t *testing.T) {
		res, err := g.MultiScalarMult(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !res.IsIdentity() {
			t.Error("empty multi-scalar-mul should be identity")
		}
	})

	t.Run("MultiScalarMultMismatch", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		_, err := g.MultiScalarMult([]group.Scalar{a}, nil)
		if !errors.Is(err, group.ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch, got %v", err)
		}
	})
}
