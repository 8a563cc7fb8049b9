package bls381

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/pbc/group"
)

// G2Point represents an element of the second source group G2, whose
// coordinates live in a degree-2 extension of the base field. It
// implements [group.Point] by wrapping gnark-crypto's affine
// representation.
//
// Like [G1Point], values are kept in affine coordinates at all times.
type G2Point struct {
	inner bls12381.G2Affine
}

// newG2Point creates a new point set to the identity element.
func newG2Point() *G2Point {
	return &G2Point{}
}

// Add sets p to a + b and returns p.
func (p *G2Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*G2Point)
	bPoint := b.(*G2Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*G2Point)
	bPoint := b.(*G2Point)
	var negB bls12381.G2Affine
	negB.Neg(&bPoint.inner)
	p.inner.Add(&aPoint.inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *G2Point) Negate(a group.Point) group.Point {
	aPoint := a.(*G2Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// Double sets p to 2 * a and returns p.
func (p *G2Point) Double(a group.Point) group.Point {
	aPoint := a.(*G2Point)
	p.inner.Add(&aPoint.inner, &aPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*G2Point)
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2Point) Set(a group.Point) group.Point {
	aPoint := a.(*G2Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Normalize returns p unchanged. Points are stored in affine form, so
// every value is already canonical.
func (p *G2Point) Normalize() group.Point {
	return p
}

// Bytes returns the canonical uncompressed encoding. Each extension
// coordinate is serialized as its imaginary then real part, X before
// Y, as big-endian bytes. The identity encodes with the infinity flag
// set and all remaining bits zero.
func (p *G2Point) Bytes() []byte {
	raw := p.inner.RawBytes()
	return raw[:]
}

// BytesCompressed returns the compressed encoding, the X coordinate
// with flag bits selecting the Y solution.
func (p *G2Point) BytesCompressed() []byte {
	raw := p.inner.Bytes()
	return raw[:]
}

// EncodedSize returns the length of the uncompressed encoding.
func (p *G2Point) EncodedSize() int {
	return bls12381.SizeOfG2AffineUncompressed
}

// Put writes the uncompressed encoding into dst and returns the number
// of bytes written.
func (p *G2Point) Put(dst []byte) (int, error) {
	if len(dst) < bls12381.SizeOfG2AffineUncompressed {
		return 0, fmt.Errorf("%w: G2 point needs %d bytes, got %d", group.ErrBufferTooSmall, bls12381.SizeOfG2AffineUncompressed, len(dst))
	}
	raw := p.inner.RawBytes()
	copy(dst, raw[:])
	return bls12381.SizeOfG2AffineUncompressed, nil
}

// SetBytes sets p from an uncompressed encoding and returns p. The
// decode is structural: flag bits and coordinate ranges are checked,
// curve and subgroup membership are not. Call IsValid before trusting
// a point decoded from untrusted bytes.
func (p *G2Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != bls12381.SizeOfG2AffineUncompressed {
		return nil, fmt.Errorf("%w: G2 point needs %d bytes, got %d", group.ErrDecode, bls12381.SizeOfG2AffineUncompressed, len(data))
	}
	switch data[0] & flagMask {
	case flagInfinity:
		if data[0] != flagInfinity || !allZero(data[1:]) {
			return nil, fmt.Errorf("%w: malformed infinity encoding", group.ErrDecode)
		}
		p.inner.X.A0.SetZero()
		p.inner.X.A1.SetZero()
		p.inner.Y.A0.SetZero()
		p.inner.Y.A1.SetZero()
		return p, nil
	case 0:
	default:
		return nil, fmt.Errorf("%w: compression flag in uncompressed encoding", group.ErrDecode)
	}
	xa1, err := decodeFieldElement(data[0*fp.Bytes : 1*fp.Bytes])
	if err != nil {
		return nil, err
	}
	xa0, err := decodeFieldElement(data[1*fp.Bytes : 2*fp.Bytes])
	if err != nil {
		return nil, err
	}
	ya1, err := decodeFieldElement(data[2*fp.Bytes : 3*fp.Bytes])
	if err != nil {
		return nil, err
	}
	ya0, err := decodeFieldElement(data[3*fp.Bytes:])
	if err != nil {
		return nil, err
	}
	if xa0.IsZero() && xa1.IsZero() && ya0.IsZero() && ya1.IsZero() {
		return nil, fmt.Errorf("%w: infinity without infinity flag", group.ErrDecode)
	}
	p.inner.X.A0 = xa0
	p.inner.X.A1 = xa1
	p.inner.Y.A0 = ya0
	p.inner.Y.A1 = ya1
	return p, nil
}

// SetBytesCompressed sets p from a compressed encoding and returns p.
// Decompression solves the curve equation, so unlike SetBytes this
// rejects encodings outside the group.
func (p *G2Point) SetBytesCompressed(data []byte) (group.Point, error) {
	if len(data) != bls12381.SizeOfG2AffineCompressed {
		return nil, fmt.Errorf("%w: compressed G2 point needs %d bytes, got %d", group.ErrDecode, bls12381.SizeOfG2AffineCompressed, len(data))
	}
	var a bls12381.G2Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrDecode, err)
	}
	p.inner = a
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *G2Point) Equal(b group.Point) bool {
	bPoint := b.(*G2Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *G2Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IsValid reports whether p is on the curve and in the prime-order
// subgroup. The identity element is a group member.
func (p *G2Point) IsValid() bool {
	if p.inner.IsInfinity() {
		return true
	}
	return p.inner.IsOnCurve() && p.inner.IsInSubGroup()
}

// G2 implements [group.Group] for the second source group of
// BLS12-381.
//
// G2 is a zero-sized type. Create an instance with &G2{} or new(G2),
// or obtain one from [Suite].
type G2 struct {
	scalarField
}

// NewPoint returns a new point set to the identity element.
func (g *G2) NewPoint() group.Point {
	return newG2Point()
}

// Generator returns the standard base point of G2.
func (g *G2) Generator() group.Point {
	p := newG2Point()
	p.inner = instance().g2Gen
	return p
}

// RandomPoint returns a uniformly distributed element of G2. Fresh
// entropy from r is hashed onto the curve, so the discrete logarithm
// of the result is unknown to everyone, the caller included.
func (g *G2) RandomPoint(r io.Reader) (group.Point, error) {
	var seed [randomSeedSize]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	return g.HashToPoint(seed[:], randomDST)
}

// HashToPoint deterministically maps msg onto G2 under the
// domain-separation tag dst.
func (g *G2) HashToPoint(msg, dst []byte) (group.Point, error) {
	a, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, err
	}
	p := newG2Point()
	p.inner = a
	return p, nil
}

// MultiScalarMult returns the sum over i of scalars[i] * points[i],
// computed as one batched multi-exponentiation.
func (g *G2) MultiScalarMult(scalars []group.Scalar, points []group.Point) (group.Point, error) {
	if len(scalars) != len(points) {
		return nil, fmt.Errorf("%w: %d scalars vs %d points", group.ErrLengthMismatch, len(scalars), len(points))
	}
	res := newG2Point()
	if len(points) == 0 {
		return res, nil
	}
	affs := make([]bls12381.G2Affine, len(points))
	elems := make([]fr.Element, len(scalars))
	for i := range points {
		affs[i] = points[i].(*G2Point).inner
		elems[i].SetBigInt(scalars[i].(*Scalar).inner)
	}
	if _, err := res.inner.MultiExp(affs, elems, ecc.MultiExpConfig{}); err != nil {
		panic("bls381: multi-exponentiation failed on group elements: " + err.Error())
	}
	return res, nil
}
