// Package bls381 provides a BLS12-381 implementation of the
// [group.Suite] interface: the three pairing groups G1, G2 and GT over
// one shared scalar field, plus the bilinear map between them.
//
// BLS12-381 is the pairing-friendly curve family used by Ethereum's
// consensus layer, Zcash and most modern pairing-based protocols. This
// package wraps the implementation from gnark-crypto, exposing the
// groups through the [group.Group], [group.Scalar] and [group.Point]
// interfaces so protocol code stays independent of the curve.
//
// # Groups
//
// [G1] and [G2] are additive elliptic-curve groups; [GT] is the
// multiplicative target group of the pairing, presented through the
// same additive method set. All three share the prime order:
//
//	52435875175126190479447740508185965837690552500527637822603658699938581184513
//
// Scalars created by any of the three groups are interchangeable.
//
// # Usage
//
// Create a Suite and pair elements of the two source groups:
//
//	e := &bls381.Suite{}
//	g1, g2 := e.G1(), e.G2()
//	gt := e.Pair(g1.Generator(), g2.Generator())
//
// [G1] and [G2] additionally implement [group.PointHasher] for
// deterministic hashing onto the curve.
//
// # Serialization
//
// Points serialize to the uncompressed affine form used by the
// gnark-crypto marshalers (96 bytes for G1, 192 for G2, 576 for GT),
// with compressed forms available on the source groups. Decoding is
// structural and never implies group membership; untrusted input must
// be checked with IsValid before use. Scalars serialize to minimal
// big-endian bytes.
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying
// arithmetic. All scalar operations are performed modulo the curve
// order, and random scalars are drawn by wide reduction to keep the
// distribution uniform.
package bls381
