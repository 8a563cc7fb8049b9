// Package group defines abstract interfaces for the groups of a
// pairing-friendly elliptic curve family.
//
// A pairing family consists of a scalar field and three groups G1, G2,
// and GT of the same prime order r, linked by a bilinear map
// e: G1 x G2 -> GT. This package provides the interfaces that abstract
// over the mathematical operations:
//
//   - [Scalar]: Elements of the scalar field (integers modulo r)
//   - [Point]: Elements of a group (curve points, or target group values)
//   - [Group]: Factory and utility methods for one group
//   - [PointHasher]: Optional hash-to-curve support for source groups
//   - [Suite]: The three groups plus the pairing between them
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency.
// Operations like Add, Mul, and ScalarMult set the receiver to the
// result and return it, allowing method chaining while minimizing
// allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking,
// making error handling explicit and predictable. The errors are typed
// sentinels ([ErrDecode], [ErrInvalidElement], [ErrDivisionByZero],
// [ErrLengthMismatch], [ErrBufferTooSmall]) so callers can distinguish
// failure classes with errors.Is. Arithmetic on well-formed operands is
// infallible by contract.
//
// # Decoding and Validation
//
// Point decoding is deliberately split in two steps. SetBytes performs
// a structural parse only: it rejects malformed lengths and bit
// patterns but accepts points that are not on the curve or outside the
// prime-order subgroup. IsValid performs the full membership check.
// This lets callers decode untrusted bytes first and decide separately
// when to pay for validation:
//
//	p, err := g.NewPoint().SetBytes(data)
//	if err != nil {
//		// structurally malformed
//	}
//	if !p.IsValid() {
//		// well-formed encoding of a bad point
//	}
//
// # Target Group Notation
//
// GT is a multiplicative group, but its [Point] implementation uses the
// same additive method names as G1 and G2: Add multiplies, Double
// squares, Negate inverts, and ScalarMult exponentiates. This keeps
// protocol code uniform across all three groups.
//
// # Implementing a Suite
//
// To implement these interfaces for a new pairing curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create Point types for G1, G2, and GT that implement [Point]
//  3. Create Group factories for the three groups, with [PointHasher]
//     on G1 and G2
//  4. Create a Suite type that implements [Suite] over the three groups
//
// See the bls381 package for a complete implementation over BLS12-381.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are generated from cryptographically secure sources
//     with enough input bits to make reduction bias negligible
//   - IsValid is called on every decoded point before it is trusted
package group
