package bls381

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/pbc/group"
)

// GTElement represents an element of the target group GT, the order-r
// subgroup of the multiplicative group of the degree-12 extension
// field. It implements [group.Point] with multiplicative semantics:
// Add multiplies, Double squares, Negate inverts and ScalarMult
// exponentiates.
//
// The identity element is the field's one.
type GTElement struct {
	inner bls12381.GT
}

// newGTElement creates a new element set to the identity.
func newGTElement() *GTElement {
	var e GTElement
	e.inner.SetOne()
	return &e
}

// Add sets p to a * b, the group operation of GT, and returns p.
func (p *GTElement) Add(a, b group.Point) group.Point {
	aElem := a.(*GTElement)
	bElem := b.(*GTElement)
	p.inner.Mul(&aElem.inner, &bElem.inner)
	return p
}

// Sub sets p to a * b^(-1) and returns p.
func (p *GTElement) Sub(a, b group.Point) group.Point {
	aElem := a.(*GTElement)
	bElem := b.(*GTElement)
	var invB bls12381.GT
	invB.Inverse(&bElem.inner)
	p.inner.Mul(&aElem.inner, &invB)
	return p
}

// Negate sets p to a^(-1) and returns p.
func (p *GTElement) Negate(a group.Point) group.Point {
	aElem := a.(*GTElement)
	p.inner.Inverse(&aElem.inner)
	return p
}

// Double sets p to a^2 and returns p.
func (p *GTElement) Double(a group.Point) group.Point {
	aElem := a.(*GTElement)
	p.inner.Square(&aElem.inner)
	return p
}

// ScalarMult sets p to q^s and returns p.
func (p *GTElement) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qElem := q.(*GTElement)
	p.inner.Exp(qElem.inner, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *GTElement) Set(a group.Point) group.Point {
	aElem := a.(*GTElement)
	p.inner.Set(&aElem.inner)
	return p
}

// Normalize returns p unchanged. Extension-field values have a single
// representation, so every value is already canonical.
func (p *GTElement) Normalize() group.Point {
	return p
}

// Bytes returns the canonical encoding, the twelve extension-field
// coefficients as big-endian bytes.
func (p *GTElement) Bytes() []byte {
	raw := p.inner.Bytes()
	return raw[:]
}

// BytesCompressed returns the same encoding as Bytes. The target
// group has a single serialized form.
func (p *GTElement) BytesCompressed() []byte {
	return p.Bytes()
}

// EncodedSize returns the length of the encoding.
func (p *GTElement) EncodedSize() int {
	return bls12381.SizeOfGT
}

// Put writes the encoding into dst and returns the number of bytes
// written.
func (p *GTElement) Put(dst []byte) (int, error) {
	if len(dst) < bls12381.SizeOfGT {
		return 0, fmt.Errorf("%w: GT element needs %d bytes, got %d", group.ErrBufferTooSmall, bls12381.SizeOfGT, len(dst))
	}
	raw := p.inner.Bytes()
	copy(dst, raw[:])
	return bls12381.SizeOfGT, nil
}

// SetBytes sets p from an encoding and returns p. The decode checks
// length and coefficient ranges only; subgroup membership is IsValid's
// job.
func (p *GTElement) SetBytes(data []byte) (group.Point, error) {
	if len(data) != bls12381.SizeOfGT {
		return nil, fmt.Errorf("%w: GT element needs %d bytes, got %d", group.ErrDecode, bls12381.SizeOfGT, len(data))
	}
	if err := p.inner.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrDecode, err)
	}
	return p, nil
}

// SetBytesCompressed sets p from an encoding, rejecting values outside
// the order-r subgroup. It is the checked counterpart of SetBytes.
func (p *GTElement) SetBytesCompressed(data []byte) (group.Point, error) {
	if _, err := p.SetBytes(data); err != nil {
		return nil, err
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: element outside the order-r subgroup", group.ErrDecode)
	}
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *GTElement) Equal(b group.Point) bool {
	bElem := b.(*GTElement)
	return p.inner.Equal(&bElem.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *GTElement) IsIdentity() bool {
	return p.inner.Equal(&instance().gtOne)
}

// IsValid reports whether p lies in the order-r subgroup, checked by
// raising p to the group order.
func (p *GTElement) IsValid() bool {
	var t bls12381.GT
	t.Exp(p.inner, curveOrder())
	return t.Equal(&instance().gtOne)
}

// GT implements [group.Group] for the target group of BLS12-381.
//
// GT is a zero-sized type. Create an instance with &GT{} or new(GT),
// or obtain one from [Suite]. GT does not implement
// [group.PointHasher]: there is no direct hash onto the target group.
type GT struct {
	scalarField
}

// NewPoint returns a new element set to the identity.
func (g *GT) NewPoint() group.Point {
	return newGTElement()
}

// Generator returns the pairing of the G1 and G2 base points, which
// generates the order-r subgroup.
func (g *GT) Generator() group.Point {
	e := newGTElement()
	e.inner = instance().gtGen
	return e
}

// RandomPoint returns a uniformly distributed element of the order-r
// subgroup, the generator raised to a random exponent.
func (g *GT) RandomPoint(r io.Reader) (group.Point, error) {
	k, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	e := newGTElement()
	e.inner.Exp(instance().gtGen, k.(*Scalar).inner)
	return e, nil
}

// MultiScalarMult returns the product over i of points[i]^scalars[i].
// The target group has no batched multi-exponentiation, so pairs are
// folded in sequentially.
func (g *GT) MultiScalarMult(scalars []group.Scalar, points []group.Point) (group.Point, error) {
	if len(scalars) != len(points) {
		return nil, fmt.Errorf("%w: %d scalars vs %d points", group.ErrLengthMismatch, len(scalars), len(points))
	}
	res := newGTElement()
	var t bls12381.GT
	for i := range points {
		t.Exp(points[i].(*GTElement).inner, scalars[i].(*Scalar).inner)
		res.inner.Mul(&res.inner, &t)
	}
	return res, nil
}
