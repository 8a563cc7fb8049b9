package bls

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/pbc/group"
)

// GenerateKey draws a fresh key pair from the given random source.
func (s *Scheme) GenerateKey(r io.Reader) (*PrivateKey, *PublicKey, error) {
	var sc group.Scalar
	for {
		var err error
		sc, err = s.g1.RandomScalar(r)
		if err != nil {
			return nil, nil, err
		}
		if !sc.IsZero() {
			break
		}
	}
	priv := &PrivateKey{s: sc}
	return priv, s.PublicKey(priv), nil
}

// PublicKey derives the public key of priv, the secret scalar times
// the G2 base point.
func (s *Scheme) PublicKey(priv *PrivateKey) *PublicKey {
	return &PublicKey{p: s.g2.NewPoint().ScalarMult(priv.s, s.g2.Generator())}
}

// Sign signs msg with priv: the message is hashed onto G1 under the
// scheme's domain tag and multiplied by the secret scalar.
func (s *Scheme) Sign(priv *PrivateKey, msg []byte) (*Signature, error) {
	h, err := s.hasher.HashToPoint(msg, s.dst)
	if err != nil {
		return nil, err
	}
	return &Signature{p: s.g1.NewPoint().ScalarMult(priv.s, h)}, nil
}

// Verify checks sig over msg against pub. It returns
// [ErrInvalidSignature] when the pairing check fails, nil when the
// signature is good.
//
// The check is the two-pairing product e(-H(msg), pub) * e(sig, G2)
// == 1, folded into one multi-pairing.
func (s *Scheme) Verify(pub *PublicKey, msg []byte, sig *Signature) error {
	h, err := s.hasher.HashToPoint(msg, s.dst)
	if err != nil {
		return err
	}
	negH := s.g1.NewPoint().Negate(h)

	res, err := s.suite.PairMulti(
		[]group.Point{negH, sig.p},
		[]group.Point{pub.p, s.g2.Generator()},
	)
	if err != nil {
		return err
	}
	if !res.IsIdentity() {
		return ErrInvalidSignature
	}
	return nil
}

// AggregateSignatures folds multiple signatures into one by adding
// their G1 points.
func (s *Scheme) AggregateSignatures(sigs ...*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, errors.New("bls: no signatures to aggregate")
	}
	agg := s.g1.NewPoint()
	for _, sig := range sigs {
		agg.Add(agg, sig.p)
	}
	return &Signature{p: agg}, nil
}

// VerifyAggregate checks an aggregate signature over per-signer
// messages: pubs[i] must have signed msgs[i]. All pairings collapse
// into a single multi-pairing.
//
// Aggregation is subject to rogue-key attacks unless every public key
// comes with a proof of possession; enforcing that is the caller's
// responsibility.
func (s *Scheme) VerifyAggregate(pubs []*PublicKey, msgs [][]byte, sig *Signature) error {
	if len(pubs) != len(msgs) {
		return fmt.Errorf("%w: %d public keys vs %d messages", group.ErrLengthMismatch, len(pubs), len(msgs))
	}
	if len(pubs) == 0 {
		return errors.New("bls: nothing to verify")
	}

	ps := make([]group.Point, 0, len(pubs)+1)
	qs := make([]group.Point, 0, len(pubs)+1)
	for i := range pubs {
		h, err := s.hasher.HashToPoint(msgs[i], s.dst)
		if err != nil {
			return err
		}
		ps = append(ps, s.g1.NewPoint().Negate(h))
		qs = append(qs, pubs[i].p)
	}
	ps = append(ps, sig.p)
	qs = append(qs, s.g2.Generator())

	res, err := s.suite.PairMulti(ps, qs)
	if err != nil {
		return err
	}
	if !res.IsIdentity() {
		return ErrInvalidSignature
	}
	return nil
}
