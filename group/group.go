package group

import (
	"io"
)

// Scalar represents an element of the scalar field shared by all groups
// of a pairing-friendly curve family. Scalars are integers modulo the
// group order r and are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, r); negative intermediate results are renormalized.
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Double sets the receiver to 2*a and returns it.
	Double(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns [ErrDivisionByZero] if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetUint64 sets the receiver to v mod r and returns it.
	SetUint64(v uint64) Scalar
	// Bytes returns the minimal big-endian encoding of the scalar.
	// Zero encodes as a single 0x00 byte. Fixed-width callers must pad
	// on the left.
	Bytes() []byte
	// EncodedSize returns the number of bytes Bytes will produce for
	// the current value.
	EncodedSize() int
	// Put writes exactly EncodedSize bytes into dst and returns the
	// number of bytes written. Returns [ErrBufferTooSmall] if dst is
	// shorter than EncodedSize.
	Put(dst []byte) (int, error)
	// SetBytes sets the receiver from a big-endian byte slice and
	// returns it. The value must be below the group order; out-of-range
	// values are rejected with [ErrDecode], never silently reduced.
	SetBytes(data []byte) (Scalar, error)
	// SetBytesWide sets the receiver from a big-endian byte slice,
	// reducing modulo the group order, and returns it. The input must
	// carry at least 48 bytes so the reduction bias stays negligible;
	// shorter inputs are rejected with [ErrDecode].
	SetBytesWide(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// IsOdd reports whether the receiver is odd.
	IsOdd() bool
}

// Point represents an element of one of the three groups of a pairing
// family. G1 and G2 are additive elliptic-curve groups; the target
// group GT is multiplicative but exposed through the same additive
// method set (add is multiply, double is square, negate is invert,
// scalar multiplication is exponentiation).
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency.
//
// The identity element (point at infinity, or one in GT) is the
// neutral element: P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// Double sets the receiver to 2*a and returns it.
	Double(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Normalize brings the receiver into the canonical coordinate form
	// used by Bytes and Equal, and returns it. Implementations that
	// keep every value canonical return the receiver unchanged.
	Normalize() Point
	// Bytes returns the canonical uncompressed encoding of the point.
	// The size is fixed per group; the identity element has a
	// distinguished encoding.
	Bytes() []byte
	// BytesCompressed returns the compressed encoding of the point.
	BytesCompressed() []byte
	// EncodedSize returns the length of the uncompressed encoding.
	EncodedSize() int
	// Put writes the uncompressed encoding into dst and returns the
	// number of bytes written. Returns [ErrBufferTooSmall] if dst is
	// shorter than EncodedSize.
	Put(dst []byte) (int, error)
	// SetBytes sets the receiver from an uncompressed encoding and
	// returns it. The decode is structural only: it rejects malformed
	// lengths and bit patterns with [ErrDecode] but performs no curve
	// or subgroup check. Untrusted points must be checked with IsValid
	// before use.
	SetBytes(data []byte) (Point, error)
	// SetBytesCompressed sets the receiver from a compressed encoding
	// and returns it. Decompression forces curve validation, so unlike
	// SetBytes this rejects points outside the group.
	SetBytesCompressed(data []byte) (Point, error)
	// Equal reports whether the receiver and b represent the same group
	// element, independent of internal coordinate form.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// IsValid reports whether the receiver is a member of the group:
	// on the curve and in the prime-order subgroup. This is never
	// implied by SetBytes.
	IsValid() bool
}

// Group defines one group of a pairing family. It provides factory
// methods for creating scalars and points, access to the group's
// generator, and utility functions for random and batched operations.
//
// A Group implementation encapsulates all curve-specific details. The
// three groups of a [Suite] share one scalar field, so scalars created
// by any of them are interchangeable.
type Group interface {
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a cryptographically random scalar.
	RandomScalar(r io.Reader) (Scalar, error)
	// RandomPoint returns a uniformly distributed group element.
	RandomPoint(r io.Reader) (Point, error)
	// HashToScalar hashes the input data to a scalar.
	HashToScalar(data ...[]byte) (Scalar, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
	// MultiScalarMult returns the sum of scalars[i]*points[i] computed
	// as one batched operation. The result equals the pointwise sum.
	// Returns [ErrLengthMismatch] if the slices differ in length; empty
	// input yields the identity.
	MultiScalarMult(scalars []Scalar, points []Point) (Point, error)
}

// PointHasher is implemented by groups that support deterministic
// hashing of arbitrary messages to uniformly distributed group
// elements. The domain separation tag dst keeps uses in different
// contexts from colliding.
//
// In a pairing suite, G1 and G2 implement PointHasher; the target
// group does not. Callers discover support by type assertion:
//
//	if h, ok := suite.G1().(group.PointHasher); ok {
//		p, err := h.HashToPoint(msg, dst)
//		...
//	}
type PointHasher interface {
	// HashToPoint maps msg to a valid group element under the domain
	// separation tag dst. The map is deterministic and the output is
	// uniformly distributed.
	HashToPoint(msg, dst []byte) (Point, error)
}

// Suite ties together the three groups of a pairing-friendly curve
// family and the bilinear map between them. All groups share the same
// prime order, which is what makes the pairing well-defined.
type Suite interface {
	// G1 returns the first source group.
	G1() Group
	// G2 returns the second source group.
	G2() Group
	// GT returns the target group.
	GT() Group
	// Order returns the shared group order as a big-endian byte slice.
	Order() []byte
	// Pair computes the bilinear map of p in G1 and q in G2, yielding
	// an element of GT. For all scalars a, b:
	// Pair(a*P, b*Q) == Pair(P, Q) * (a*b) in GT's additive notation.
	// Identity operands yield the GT identity.
	Pair(p, q Point) Point
	// PairMulti computes the sum of Pair(ps[i], qs[i]) over all pairs
	// using shared optimization across all inputs. The result equals
	// pairing each pair and adding, but is far cheaper. Returns
	// [ErrLengthMismatch] if the slices differ in length; empty input
	// yields the GT identity by convention.
	PairMulti(ps, qs []Point) (Point, error)
}
