package spseq

import (
	"errors"
	"fmt"

	"github.com/f3rmion/pbc/group"
)

// ErrInvalidSignature is returned by Verify when either pairing check
// fails.
var ErrInvalidSignature = errors.New("spseq: invalid signature")

// Scheme implements structure-preserving signatures on equivalence
// classes over a pairing suite. Messages are vectors of G1 points of a
// fixed length; two messages related by a scalar multiple belong to
// the same equivalence class and [Scheme.ChangeRep] moves a signature
// between representatives.
type Scheme struct {
	suite group.Suite
	g1    group.Group
	g2    group.Group
	size  int
}

// New creates a scheme for message vectors of the given length.
func New(suite group.Suite, size int) (*Scheme, error) {
	if size < 1 {
		return nil, errors.New("spseq: message vector length must be at least 1")
	}
	return &Scheme{
		suite: suite,
		g1:    suite.G1(),
		g2:    suite.G2(),
		size:  size,
	}, nil
}

// Size returns the message vector length the scheme signs.
func (s *Scheme) Size() int {
	return s.size
}

// PrivateKey is an SPS-EQ secret key, one scalar per message slot.
type PrivateKey struct {
	xs []group.Scalar
}

// PublicKey is an SPS-EQ public key, each secret scalar times the G2
// base point.
type PublicKey struct {
	ps []group.Point
}

// Equal reports whether k and other hold the same key points.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if len(k.ps) != len(other.ps) {
		return false
	}
	for i := range k.ps {
		if !k.ps[i].Equal(other.ps[i]) {
			return false
		}
	}
	return true
}

// Bytes returns the concatenated uncompressed encodings of the key
// points.
func (k *PublicKey) Bytes() []byte {
	var out []byte
	for _, p := range k.ps {
		out = append(out, p.Bytes()...)
	}
	return out
}

// PublicKeyFromBytes decodes and validates a public key. The input
// must hold exactly size G2 encodings.
func (s *Scheme) PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	pointSize := s.g2.NewPoint().EncodedSize()
	if len(data) != s.size*pointSize {
		return nil, fmt.Errorf("%w: public key needs %d bytes, got %d", group.ErrDecode, s.size*pointSize, len(data))
	}
	ps := make([]group.Point, s.size)
	for i := range ps {
		p, err := s.g2.NewPoint().SetBytes(data[i*pointSize : (i+1)*pointSize])
		if err != nil {
			return nil, err
		}
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: public key slot %d outside the group", group.ErrInvalidElement, i)
		}
		ps[i] = p
	}
	return &PublicKey{ps: ps}, nil
}

// Signature is an SPS-EQ signature (Z, Y, Yhat) with Z and Y in G1 and
// Yhat in G2.
type Signature struct {
	z    group.Point
	y    group.Point
	yhat group.Point
}

// Equal reports whether sig and other hold the same points.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.z.Equal(other.z) && sig.y.Equal(other.y) && sig.yhat.Equal(other.yhat)
}

// Bytes returns the concatenated uncompressed encodings of Z, Y and
// Yhat.
func (sig *Signature) Bytes() []byte {
	var out []byte
	out = append(out, sig.z.Bytes()...)
	out = append(out, sig.y.Bytes()...)
	out = append(out, sig.yhat.Bytes()...)
	return out
}

// SignatureFromBytes decodes and validates a signature.
func (s *Scheme) SignatureFromBytes(data []byte) (*Signature, error) {
	g1Size := s.g1.NewPoint().EncodedSize()
	g2Size := s.g2.NewPoint().EncodedSize()
	if len(data) != 2*g1Size+g2Size {
		return nil, fmt.Errorf("%w: signature needs %d bytes, got %d", group.ErrDecode, 2*g1Size+g2Size, len(data))
	}

	z, err := s.g1.NewPoint().SetBytes(data[:g1Size])
	if err != nil {
		return nil, err
	}
	y, err := s.g1.NewPoint().SetBytes(data[g1Size : 2*g1Size])
	if err != nil {
		return nil, err
	}
	yhat, err := s.g2.NewPoint().SetBytes(data[2*g1Size:])
	if err != nil {
		return nil, err
	}
	for _, p := range []group.Point{z, y, yhat} {
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: signature component outside the group", group.ErrInvalidElement)
		}
	}
	return &Signature{z: z, y: y, yhat: yhat}, nil
}
