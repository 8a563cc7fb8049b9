// Package bls implements BLS signatures over an arbitrary pairing
// suite.
//
// BLS is a deterministic signature scheme built directly on the
// bilinear pairing: the signature on a message is the secret scalar
// times the message hashed onto G1, and verification is a pairing
// equation. Its standout feature is non-interactive aggregation: any
// number of signatures fold into one group element that still verifies
// against all the original keys and messages.
//
// This package uses the small-signature variant: signatures live in
// G1 (96 bytes uncompressed on BLS12-381), public keys in G2.
//
// # Example
//
// Sign and verify a message:
//
//	scheme, _ := bls.New(&bls381.Suite{})
//	priv, pub, _ := scheme.GenerateKey(rand.Reader)
//
//	sig, _ := scheme.Sign(priv, []byte("hello"))
//	if err := scheme.Verify(pub, []byte("hello"), sig); err != nil {
//	    // signature rejected
//	}
//
// Aggregate signatures from independent signers:
//
//	agg, _ := scheme.AggregateSignatures(sig1, sig2, sig3)
//	err := scheme.VerifyAggregate(
//	    []*bls.PublicKey{pub1, pub2, pub3},
//	    [][]byte{msg1, msg2, msg3},
//	    agg,
//	)
//
// # Security Considerations
//
// Keys and signatures decoded from untrusted bytes go through the full
// validity check: the FromBytes constructors reject points outside the
// prime-order subgroup and identity public keys, so a Scheme never
// pairs an invalid element.
//
// Aggregate verification is subject to rogue-key attacks when an
// adversary may choose its public key after seeing others. Deployments
// must require a proof of possession for every registered key.
//
// Distinct deployments must use distinct domain-separation tags (see
// [NewWithDomain]); the default tag is the standard ciphersuite for
// BLS12-381 G1 signatures.
package bls
