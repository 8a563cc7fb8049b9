package bls

import (
	"errors"
	"fmt"

	"github.com/f3rmion/pbc/group"
)

// DefaultDomain is the domain-separation tag of the standard BLS
// ciphersuite with signatures in G1, hashed via SSWU.
const DefaultDomain = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"

// ErrInvalidSignature is returned by Verify and VerifyAggregate when
// the pairing check fails.
var ErrInvalidSignature = errors.New("bls: invalid signature")

// Scheme implements BLS signatures over a pairing suite. Signatures
// live in G1 and public keys in G2, the small-signature variant.
type Scheme struct {
	suite  group.Suite
	g1     group.Group
	g2     group.Group
	hasher group.PointHasher
	dst    []byte
}

// New creates a BLS scheme over the given pairing suite, using the
// standard ciphersuite domain-separation tag.
func New(suite group.Suite) (*Scheme, error) {
	return NewWithDomain(suite, []byte(DefaultDomain))
}

// NewWithDomain creates a BLS scheme with a custom domain-separation
// tag. Distinct deployments must use distinct tags so their signatures
// cannot be replayed across contexts.
func NewWithDomain(suite group.Suite, dst []byte) (*Scheme, error) {
	if len(dst) == 0 {
		return nil, errors.New("bls: empty domain separation tag")
	}
	g1 := suite.G1()
	hasher, ok := g1.(group.PointHasher)
	if !ok {
		return nil, errors.New("bls: suite's G1 does not support hashing to the curve")
	}
	return &Scheme{
		suite:  suite,
		g1:     g1,
		g2:     suite.G2(),
		hasher: hasher,
		dst:    dst,
	}, nil
}

// PrivateKey is a BLS secret key, a nonzero scalar.
type PrivateKey struct {
	s group.Scalar
}

// Bytes returns the minimal big-endian encoding of the secret scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.s.Bytes()
}

// Equal reports whether k and other hold the same secret scalar.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	return k.s.Equal(other.s)
}

// PrivateKeyFromBytes decodes a secret key. The zero scalar is not a
// usable key and is rejected with [group.ErrInvalidElement].
func (s *Scheme) PrivateKeyFromBytes(data []byte) (*PrivateKey, error) {
	sc, err := s.g1.NewScalar().SetBytes(data)
	if err != nil {
		return nil, err
	}
	if sc.IsZero() {
		return nil, fmt.Errorf("%w: zero secret key", group.ErrInvalidElement)
	}
	return &PrivateKey{s: sc}, nil
}

// PublicKey is a BLS public key, the secret scalar times the G2 base
// point.
type PublicKey struct {
	p group.Point
}

// Bytes returns the canonical uncompressed encoding of the key.
func (k *PublicKey) Bytes() []byte {
	return k.p.Bytes()
}

// Equal reports whether k and other represent the same group element.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return k.p.Equal(other.p)
}

// PublicKeyFromBytes decodes and validates a public key. Structural
// defects surface as [group.ErrDecode]; a point outside the group, or
// the identity, as [group.ErrInvalidElement].
func (s *Scheme) PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	p, err := s.g2.NewPoint().SetBytes(data)
	if err != nil {
		return nil, err
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: public key outside the group", group.ErrInvalidElement)
	}
	if p.IsIdentity() {
		return nil, fmt.Errorf("%w: identity public key", group.ErrInvalidElement)
	}
	return &PublicKey{p: p}, nil
}

// Signature is a BLS signature, the secret scalar times the hashed
// message in G1.
type Signature struct {
	p group.Point
}

// Bytes returns the canonical uncompressed encoding of the signature.
func (sig *Signature) Bytes() []byte {
	return sig.p.Bytes()
}

// Equal reports whether sig and other represent the same group
// element.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.p.Equal(other.p)
}

// SignatureFromBytes decodes and validates a signature. Structural
// defects surface as [group.ErrDecode]; a point outside the group as
// [group.ErrInvalidElement].
func (s *Scheme) SignatureFromBytes(data []byte) (*Signature, error) {
	p, err := s.g1.NewPoint().SetBytes(data)
	if err != nil {
		return nil, err
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: signature outside the group", group.ErrInvalidElement)
	}
	return &Signature{p: p}, nil
}
