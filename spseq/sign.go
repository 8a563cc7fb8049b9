package spseq

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/pbc/group"
)

// GenerateKey draws a fresh key pair from the given random source, one
// scalar per message slot.
func (s *Scheme) GenerateKey(r io.Reader) (*PrivateKey, *PublicKey, error) {
	xs := make([]group.Scalar, s.size)
	for i := range xs {
		x, err := s.g1.RandomScalar(r)
		if err != nil {
			return nil, nil, err
		}
		xs[i] = x
	}
	priv := &PrivateKey{xs: xs}
	return priv, s.PublicKey(priv), nil
}

// PublicKey derives the public key of priv.
func (s *Scheme) PublicKey(priv *PrivateKey) *PublicKey {
	ps := make([]group.Point, len(priv.xs))
	for i, x := range priv.xs {
		ps[i] = s.g2.NewPoint().ScalarMult(x, s.g2.Generator())
	}
	return &PublicKey{ps: ps}
}

// RandomMessage draws a uniformly random message vector, one G1 point
// per slot.
func (s *Scheme) RandomMessage(r io.Reader) ([]group.Point, error) {
	msg := make([]group.Point, s.size)
	for i := range msg {
		m, err := s.g1.RandomPoint(r)
		if err != nil {
			return nil, err
		}
		msg[i] = m
	}
	return msg, nil
}

// Sign signs a message vector. The signature is randomized: Z is the
// batched sum of x_i * M_i scaled by a fresh nonzero y, and Y, Yhat
// carry y's inverse on the two base points.
func (s *Scheme) Sign(r io.Reader, priv *PrivateKey, msg []group.Point) (*Signature, error) {
	if len(msg) != s.size {
		return nil, fmt.Errorf("%w: message has %d slots, scheme signs %d", group.ErrLengthMismatch, len(msg), s.size)
	}

	var y group.Scalar
	for {
		var err error
		y, err = s.g1.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		if !y.IsZero() {
			break
		}
	}
	yInv, err := s.g1.NewScalar().Invert(y)
	if err != nil {
		return nil, err
	}

	sum, err := s.g1.MultiScalarMult(priv.xs, msg)
	if err != nil {
		return nil, err
	}

	return &Signature{
		z:    s.g1.NewPoint().ScalarMult(y, sum),
		y:    s.g1.NewPoint().ScalarMult(yInv, s.g1.Generator()),
		yhat: s.g2.NewPoint().ScalarMult(yInv, s.g2.Generator()),
	}, nil
}

// Verify checks sig over a message vector against pub. It returns
// [ErrInvalidSignature] when either pairing check fails, nil when the
// signature is good.
//
// Two multi-pairings are checked: the product of e(M_i, pk_i) must
// cancel e(Z, Yhat), and e(Y, G2) must cancel e(G1, Yhat), which ties
// the two inverse factors to the same y.
func (s *Scheme) Verify(pub *PublicKey, msg []group.Point, sig *Signature) error {
	if len(msg) != s.size {
		return fmt.Errorf("%w: message has %d slots, scheme signs %d", group.ErrLengthMismatch, len(msg), s.size)
	}
	if len(pub.ps) != s.size {
		return fmt.Errorf("%w: public key has %d slots, scheme signs %d", group.ErrLengthMismatch, len(pub.ps), s.size)
	}

	ps := make([]group.Point, 0, s.size+1)
	qs := make([]group.Point, 0, s.size+1)
	ps = append(ps, s.g1.NewPoint().Negate(sig.z))
	qs = append(qs, sig.yhat)
	for i := range msg {
		ps = append(ps, msg[i])
		qs = append(qs, pub.ps[i])
	}
	first, err := s.suite.PairMulti(ps, qs)
	if err != nil {
		return err
	}

	second, err := s.suite.PairMulti(
		[]group.Point{sig.y, s.g1.NewPoint().Negate(s.g1.Generator())},
		[]group.Point{s.g2.Generator(), sig.yhat},
	)
	if err != nil {
		return err
	}

	if !first.IsIdentity() || !second.IsIdentity() {
		return ErrInvalidSignature
	}
	return nil
}

// ChangeRep moves a signed message to another representative of its
// equivalence class: the message is scaled by mu and the signature is
// rerandomized with psi, yielding a fresh valid pair that cannot be
// linked to the original. Both randomizers must be nonzero.
func (s *Scheme) ChangeRep(msg []group.Point, sig *Signature, mu, psi group.Scalar) ([]group.Point, *Signature, error) {
	if len(msg) != s.size {
		return nil, nil, fmt.Errorf("%w: message has %d slots, scheme signs %d", group.ErrLengthMismatch, len(msg), s.size)
	}
	if mu.IsZero() || psi.IsZero() {
		return nil, nil, errors.New("spseq: randomizer must be nonzero")
	}
	psiInv, err := s.g1.NewScalar().Invert(psi)
	if err != nil {
		return nil, nil, err
	}

	newMsg := make([]group.Point, len(msg))
	for i := range msg {
		newMsg[i] = s.g1.NewPoint().ScalarMult(mu, msg[i])
	}

	muPsi := s.g1.NewScalar().Mul(mu, psi)
	newSig := &Signature{
		z:    s.g1.NewPoint().ScalarMult(muPsi, sig.z),
		y:    s.g1.NewPoint().ScalarMult(psiInv, sig.y),
		yhat: s.g2.NewPoint().ScalarMult(psiInv, sig.yhat),
	}
	return newMsg, newSig, nil
}
