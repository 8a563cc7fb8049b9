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

// G1Point represents an element of the first source group G1.
// It implements [group.Point] by wrapping gnark-crypto's affine
// representation.
//
// Points are kept in affine coordinates at all times, so every value
// is already in the canonical form used by Bytes and Equal. The
// identity element is the point at infinity.
type G1Point struct {
	inner bls12381.G1Affine
}

// newG1Point creates a new point set to the identity element.
func newG1Point() *G1Point {
	return &G1Point{}
}

// Add sets p to a + b and returns p.
func (p *G1Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*G1Point)
	bPoint := b.(*G1Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*G1Point)
	bPoint := b.(*G1Point)
	var negB bls12381.G1Affine
	negB.Neg(&bPoint.inner)
	p.inner.Add(&aPoint.inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *G1Point) Negate(a group.Point) group.Point {
	aPoint := a.(*G1Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// Double sets p to 2 * a and returns p.
func (p *G1Point) Double(a group.Point) group.Point {
	aPoint := a.(*G1Point)
	p.inner.Add(&aPoint.inner, &aPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*G1Point)
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1Point) Set(a group.Point) group.Point {
	aPoint := a.(*G1Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Normalize returns p unchanged. Points are stored in affine form, so
// every value is already canonical.
func (p *G1Point) Normalize() group.Point {
	return p
}

// Bytes returns the canonical uncompressed encoding, the X then Y
// coordinate as big-endian bytes. The identity encodes with the
// infinity flag set and all remaining bits zero.
func (p *G1Point) Bytes() []byte {
	raw := p.inner.RawBytes()
	return raw[:]
}

// BytesCompressed returns the compressed encoding, the X coordinate
// with flag bits selecting the Y solution.
func (p *G1Point) BytesCompressed() []byte {
	raw := p.inner.Bytes()
	return raw[:]
}

// EncodedSize returns the length of the uncompressed encoding.
func (p *G1Point) EncodedSize() int {
	return bls12381.SizeOfG1AffineUncompressed
}

// Put writes the uncompressed encoding into dst and returns the number
// of bytes written.
func (p *G1Point) Put(dst []byte) (int, error) {
	if len(dst) < bls12381.SizeOfG1AffineUncompressed {
		return 0, fmt.Errorf("%w: G1 point needs %d bytes, got %d", group.ErrBufferTooSmall, bls12381.SizeOfG1AffineUncompressed, len(dst))
	}
	raw := p.inner.RawBytes()
	copy(dst, raw[:])
	return bls12381.SizeOfG1AffineUncompressed, nil
}

// SetBytes sets p from an uncompressed encoding and returns p. The
// decode is structural: flag bits and coordinate ranges are checked,
// curve and subgroup membership are not. Call IsValid before trusting
// a point decoded from untrusted bytes.
func (p *G1Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != bls12381.SizeOfG1AffineUncompressed {
		return nil, fmt.Errorf("%w: G1 point needs %d bytes, got %d", group.ErrDecode, bls12381.SizeOfG1AffineUncompressed, len(data))
	}
	switch data[0] & flagMask {
	case flagInfinity:
		if data[0] != flagInfinity || !allZero(data[1:]) {
			return nil, fmt.Errorf("%w: malformed infinity encoding", group.ErrDecode)
		}
		p.inner.X.SetZero()
		p.inner.Y.SetZero()
		return p, nil
	case 0:
	default:
		return nil, fmt.Errorf("%w: compression flag in uncompressed encoding", group.ErrDecode)
	}
	x, err := decodeFieldElement(data[:fp.Bytes])
	if err != nil {
		return nil, err
	}
	y, err := decodeFieldElement(data[fp.Bytes:])
	if err != nil {
		return nil, err
	}
	if x.IsZero() && y.IsZero() {
		return nil, fmt.Errorf("%w: infinity without infinity flag", group.ErrDecode)
	}
	p.inner.X = x
	p.inner.Y = y
	return p, nil
}

// SetBytesCompressed sets p from a compressed encoding and returns p.
// Decompression solves the curve equation, so unlike SetBytes this
// rejects encodings outside the group.
func (p *G1Point) SetBytesCompressed(data []byte) (group.Point, error) {
	if len(data) != bls12381.SizeOfG1AffineCompressed {
		return nil, fmt.Errorf("%w: compressed G1 point needs %d bytes, got %d", group.ErrDecode, bls12381.SizeOfG1AffineCompressed, len(data))
	}
	var a bls12381.G1Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrDecode, err)
	}
	p.inner = a
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *G1Point) Equal(b group.Point) bool {
	bPoint := b.(*G1Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *G1Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IsValid reports whether p is on the curve and in the prime-order
// subgroup. The identity element is a group member.
func (p *G1Point) IsValid() bool {
	if p.inner.IsInfinity() {
		return true
	}
	return p.inner.IsOnCurve() && p.inner.IsInSubGroup()
}

// G1 implements [group.Group] for the first source group of BLS12-381.
//
// G1 is a zero-sized type. Create an instance with &G1{} or new(G1),
// or obtain one from [Suite].
type G1 struct {
	scalarField
}

// NewPoint returns a new point set to the identity element.
func (g *G1) NewPoint() group.Point {
	return newG1Point()
}

// Generator returns the standard base point of G1.
func (g *G1) Generator() group.Point {
	p := newG1Point()
	p.inner = instance().g1Gen
	return p
}

// RandomPoint returns a uniformly distributed element of G1. Fresh
// entropy from r is hashed onto the curve, so the discrete logarithm
// of the result is unknown to everyone, the caller included.
func (g *G1) RandomPoint(r io.Reader) (group.Point, error) {
	var seed [randomSeedSize]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	return g.HashToPoint(seed[:], randomDST)
}

// HashToPoint deterministically maps msg onto G1 under the
// domain-separation tag dst.
func (g *G1) HashToPoint(msg, dst []byte) (group.Point, error) {
	a, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, err
	}
	p := newG1Point()
	p.inner = a
	return p, nil
}

// MultiScalarMult returns the sum over i of scalars[i] * points[i],
// computed as one batched multi-exponentiation.
func (g *G1) MultiScalarMult(scalars []group.Scalar, points []group.Point) (group.Point, error) {
	if len(scalars) != len(points) {
		return nil, fmt.Errorf("%w: %d scalars vs %d points", group.ErrLengthMismatch, len(scalars), len(points))
	}
	res := newG1Point()
	if len(points) == 0 {
		return res, nil
	}
	affs := make([]bls12381.G1Affine, len(points))
	elems := make([]fr.Element, len(scalars))
	for i := range points {
		affs[i] = points[i].(*G1Point).inner
		elems[i].SetBigInt(scalars[i].(*Scalar).inner)
	}
	if _, err := res.inner.MultiExp(affs, elems, ecc.MultiExpConfig{}); err != nil {
		panic("bls381: multi-exponentiation failed on group elements: " + err.Error())
	}
	return res, nil
}
