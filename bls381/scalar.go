package bls381

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/pbc/group"
	"golang.org/x/crypto/blake2b"
)

// wideScalarSize is the minimum input length for SetBytesWide. Wide
// reduction needs at least 128 bits of slack over the 255-bit order to
// keep the mod-r bias cryptographically negligible.
const wideScalarSize = 48

// Scalar represents an element of the BLS12-381 scalar field Fr.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve order r.
//
// All arithmetic operations automatically reduce results modulo the
// curve order to maintain valid scalar values.
type Scalar struct {
	inner *big.Int
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce ensures the scalar is in the range [0, curveOrder).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, curveOrder())
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Negate sets s to -a (mod curveOrder) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Neg(aScalar.inner)
	s.reduce()
	return s
}

// Double sets s to 2 * a (mod curveOrder) and returns s.
func (s *Scalar) Double(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Lsh(aScalar.inner, 1)
	s.reduce()
	return s
}

// Invert sets s to a^(-1) (mod curveOrder) and returns s.
// Returns [group.ErrDivisionByZero] if a is zero.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, group.ErrDivisionByZero
	}
	s.inner.ModInverse(aScalar.inner, curveOrder())
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(aScalar.inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the minimal big-endian representation of the scalar.
// The zero scalar encodes as a single zero byte. Fixed-width callers
// must pad on the left.
func (s *Scalar) Bytes() []byte {
	if s.inner.Sign() == 0 {
		return []byte{0}
	}
	return s.inner.Bytes()
}

// EncodedSize returns the number of bytes Bytes produces for the
// current value.
func (s *Scalar) EncodedSize() int {
	if s.inner.Sign() == 0 {
		return 1
	}
	return (s.inner.BitLen() + 7) / 8
}

// Put writes the minimal big-endian representation into dst and
// returns the number of bytes written.
func (s *Scalar) Put(dst []byte) (int, error) {
	size := s.EncodedSize()
	if len(dst) < size {
		return 0, fmt.Errorf("%w: scalar needs %d bytes, got %d", group.ErrBufferTooSmall, size, len(dst))
	}
	s.inner.FillBytes(dst[:size])
	return size, nil
}

// SetBytes sets s from a big-endian byte slice and returns s.
// Values at or above the curve order are rejected with
// [group.ErrDecode], never silently reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty scalar encoding", group.ErrDecode)
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(curveOrder()) >= 0 {
		return nil, fmt.Errorf("%w: scalar exceeds curve order", group.ErrDecode)
	}
	s.inner.Set(v)
	return s, nil
}

// SetBytesWide sets s from a big-endian byte slice, reducing the value
// modulo the curve order, and returns s. The input must carry at least
// wideScalarSize bytes; shorter inputs are rejected with
// [group.ErrDecode].
func (s *Scalar) SetBytesWide(data []byte) (group.Scalar, error) {
	if len(data) < wideScalarSize {
		return nil, fmt.Errorf("%w: wide scalar input needs at least %d bytes, got %d", group.ErrDecode, wideScalarSize, len(data))
	}
	s.inner.SetBytes(data)
	s.reduce()
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Cmp(bScalar.inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// IsOdd reports whether the canonical value of s is odd.
func (s *Scalar) IsOdd() bool {
	return s.inner.Bit(0) == 1
}

// scalarField provides the scalar-side factory methods shared by the
// three groups, which operate over the same field Fr.
type scalarField struct{}

// NewScalar returns a new scalar initialized to zero.
func (scalarField) NewScalar() group.Scalar {
	return newScalar()
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. Wide reduction of 48 source bytes keeps the
// result uniformly distributed in [0, curveOrder).
func (scalarField) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [wideScalarSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return newScalar().SetBytesWide(buf[:])
}

// HashToScalar hashes the provided data to a scalar using BLAKE2b-512.
// Multiple byte slices are concatenated before hashing; the 64-byte
// digest is wide-reduced modulo the curve order.
func (scalarField) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h, _ := blake2b.New512(nil)
	for _, d := range data {
		h.Write(d)
	}
	return newScalar().SetBytesWide(h.Sum(nil))
}

// Order returns the prime order r as a big-endian byte slice.
func (scalarField) Order() []byte {
	return curveOrder().Bytes()
}
