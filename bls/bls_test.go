package bls

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/pbc/bls381"
	"github.com/f3rmion/pbc/group"
)

func newTestScheme(t *testing.T) *Scheme {
	t.Helper()
	scheme, err := New(&bls381.Suite{})
	if err != nil {
		t.Fatal(err)
	}
	return scheme
}

func TestSignVerify(t *testing.T) {
	scheme := newTestScheme(t)
	priv, pub, err := scheme.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("attack at dawn")

	t.Run("Roundtrip", func(t *testing.T) {
		sig, err := scheme.Sign(priv, msg)
		if err != nil {
			t.Fatal(err)
		}
		if err := scheme.Verify(pub, msg, sig); err != nil {
			t.Error("valid signature rejected:", err)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		sig1, _ := scheme.Sign(priv, msg)
		sig2, _ := scheme.Sign(priv, msg)
		if !sig1.Equal(sig2) {
			t.Error("signing the same message twice should give the same signature")
		}
	})

	t.Run("WrongMessage", func(t *testing.T) {
		sig, _ := scheme.Sign(priv, msg)
		err := scheme.Verify(pub, []byte("attack at dusk"), sig)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		sig, _ := scheme.Sign(priv, msg)
		_, otherPub, _ := scheme.GenerateKey(rand.Reader)
		err := scheme.Verify(otherPub, msg, sig)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("TamperedSignature", func(t *testing.T) {
		sig, _ := scheme.Sign(priv, msg)
		tampered, err := scheme.AggregateSignatures(sig, sig)
		if err != nil {
			t.Fatal(err)
		}
		err = scheme.Verify(pub, msg, tampered)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})
}

func TestAggregate(t *testing.T) {
	scheme := newTestScheme(t)

	const n = 3
	privs := make([]*PrivateKey, n)
	pubs := make([]*PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([]*Signature, n)
	for i := range privs {
		var err error
		privs[i], pubs[i], err = scheme.GenerateKey(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		msgs[i] = []byte{byte(i), 'm', 's', 'g'}
		sigs[i], err = scheme.Sign(privs[i], msgs[i])
		if err != nil {
			t.Fatal(err)
		}
	}

	t.Run("Roundtrip", func(t *testing.T) {
		agg, err := scheme.AggregateSignatures(sigs...)
		if err != nil {
			t.Fatal(err)
		}
		if err := scheme.VerifyAggregate(pubs, msgs, agg); err != nil {
			t.Error("valid aggregate rejected:", err)
		}
	})

	t.Run("SingleSigner", func(t *testing.T) {
		agg, err := scheme.AggregateSignatures(sigs[0])
		if err != nil {
			t.Fatal(err)
		}
		if err := scheme.VerifyAggregate(pubs[:1], msgs[:1], agg); err != nil {
			t.Error("single-signer aggregate rejected:", err)
		}
	})

	t.Run("WrongMessage", func(t *testing.T) {
		agg, _ := scheme.AggregateSignatures(sigs...)
		badMsgs := [][]byte{msgs[0], msgs[1], []byte("substituted")}
		err := scheme.VerifyAggregate(pubs, badMsgs, agg)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("MissingSignature", func(t *testing.T) {
		agg, _ := scheme.AggregateSignatures(sigs[:2]...)
		err := scheme.VerifyAggregate(pubs, msgs, agg)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		agg, _ := scheme.AggregateSignatures(sigs...)
		err := scheme.VerifyAggregate(pubs[:2], msgs, agg)
		if !errors.Is(err, group.ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch, got %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := scheme.AggregateSignatures(); err == nil {
			t.Error("aggregating nothing should fail")
		}
	})
}

func TestKeyCodec(t *testing.T) {
	scheme := newTestScheme(t)
	priv, pub, err := scheme.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("PrivateKeyRoundtrip", func(t *testing.T) {
		restored, err := scheme.PrivateKeyFromBytes(priv.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(priv) {
			t.Error("private key roundtrip failed")
		}
		if !scheme.PublicKey(restored).Equal(pub) {
			t.Error("restored key should derive the same public key")
		}
	})

	t.Run("PublicKeyRoundtrip", func(t *testing.T) {
		restored, err := scheme.PublicKeyFromBytes(pub.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(pub) {
			t.Error("public key roundtrip failed")
		}
	})

	t.Run("SignatureRoundtrip", func(t *testing.T) {
		sig, _ := scheme.Sign(priv, []byte("msg"))
		restored, err := scheme.SignatureFromBytes(sig.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(sig) {
			t.Error("signature roundtrip failed")
		}
	})

	t.Run("ZeroPrivateKey", func(t *testing.T) {
		_, err := scheme.PrivateKeyFromBytes([]byte{0})
		if !errors.Is(err, group.ErrInvalidElement) {
			t.Errorf("expected ErrInvalidElement, got %v", err)
		}
	})

	t.Run("TruncatedPublicKey", func(t *testing.T) {
		_, err := scheme.PublicKeyFromBytes(pub.Bytes()[:10])
		if !errors.Is(err, group.ErrDecode) {
			t.Errorf("expected ErrDecode, got %v", err)
		}
	})

	t.Run("OffCurvePublicKey", func(t *testing.T) {
		enc := pub.Bytes()
		enc[len(enc)-1] ^= 1
		_, err := scheme.PublicKeyFromBytes(enc)
		if !errors.Is(err, group.ErrInvalidElement) {
			t.Errorf("expected ErrInvalidElement, got %v", err)
		}
	})

	t.Run("IdentityPublicKey", func(t *testing.T) {
		identity := (&bls381.Suite{}).G2().NewPoint()
		_, err := scheme.PublicKeyFromBytes(identity.Bytes())
		if !errors.Is(err, group.ErrInvalidElement) {
			t.Errorf("expected ErrInvalidElement, got %v", err)
		}
	})
}

func TestNew(t *testing.T) {
	if _, err := NewWithDomain(&bls381.Suite{}, nil); err == nil {
		t.Error("empty domain tag should be rejected")
	}
}
