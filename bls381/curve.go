package bls381

import (
	"fmt"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/pbc/group"
)

// engine holds the process-wide curve state: the cached group order and
// the generators of the three groups. It is written exactly once, by
// the run-once barrier in instance, and read-only afterwards.
type engine struct {
	order *big.Int
	g1Gen bls12381.G1Affine
	g2Gen bls12381.G2Affine
	gtGen bls12381.GT
	gtOne bls12381.GT
}

var (
	engineOnce sync.Once
	eng        engine
)

// instance returns the shared engine state, initializing it on first
// use. Concurrent first use is safe: exactly one caller performs the
// setup while the others wait. There is no teardown; the state stays
// valid for the process lifetime.
func instance() *engine {
	engineOnce.Do(func() {
		eng.order = fr.Modulus()
		_, _, eng.g1Gen, eng.g2Gen = bls12381.Generators()
		gt, err := bls12381.Pair([]bls12381.G1Affine{eng.g1Gen}, []bls12381.G2Affine{eng.g2Gen})
		if err != nil {
			panic("bls381: generator pairing failed: " + err.Error())
		}
		eng.gtGen = gt
		eng.gtOne.SetOne()
	})
	return &eng
}

// curveOrder returns the prime order r shared by the scalar field and
// all three groups.
func curveOrder() *big.Int {
	return instance().order
}

// randomDST is the fixed domain-separation tag under which RandomPoint
// hashes fresh entropy onto the curve.
var randomDST = []byte("randrandrandrandrandrandrandrand")

// randomSeedSize is the number of entropy bytes RandomPoint draws
// before hashing them to a group element.
const randomSeedSize = 64

// Flag bits carried in the most significant byte of a serialized
// point, following the zcash convention used by the gnark-crypto
// marshalers.
const (
	flagMask     byte = 0b111 << 5
	flagInfinity byte = 0b010 << 5
)

// decodeFieldElement parses a big-endian base-field coordinate,
// rejecting values at or above the field modulus.
func decodeFieldElement(data []byte) (fp.Element, error) {
	var e fp.Element
	v := new(big.Int).SetBytes(data)
	if v.Cmp(fp.Modulus()) >= 0 {
		return e, fmt.Errorf("%w: coordinate exceeds field modulus", group.ErrDecode)
	}
	e.SetBigInt(v)
	return e, nil
}

func allZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// Suite implements [group.Suite] for the BLS12-381 curve family.
//
// Suite is a zero-sized type that ties the three groups to the
// bilinear pairing between them. Create an instance with &Suite{} or
// new(Suite).
type Suite struct{}

// G1 returns the first source group.
func (s *Suite) G1() group.Group {
	return &G1{}
}

// G2 returns the second source group.
func (s *Suite) G2() group.Group {
	return &G2{}
}

// GT returns the target group.
func (s *Suite) GT() group.Group {
	return &GT{}
}

// Order returns the shared prime order r as a big-endian byte slice.
func (s *Suite) Order() []byte {
	return curveOrder().Bytes()
}

// Pair computes the bilinear map of p in G1 and q in G2. An identity
// operand yields the GT identity.
//
// The pairing cannot fail on group elements; an engine fault here is a
// contract violation and panics.
func (s *Suite) Pair(p, q group.Point) group.Point {
	pPoint := p.(*G1Point)
	qPoint := q.(*G2Point)
	gt, err := bls12381.Pair([]bls12381.G1Affine{pPoint.inner}, []bls12381.G2Affine{qPoint.inner})
	if err != nil {
		panic("bls381: pairing failed on group elements: " + err.Error())
	}
	r := newGTElement()
	r.inner = gt
	return r
}

// PairMulti computes the sum over i of Pair(ps[i], qs[i]), sharing one
// Miller loop and final exponentiation across all pairs. Empty input
// yields the GT identity.
func (s *Suite) PairMulti(ps, qs []group.Point) (group.Point, error) {
	if len(ps) != len(qs) {
		return nil, fmt.Errorf("%w: %d G1 points vs %d G2 points", group.ErrLengthMismatch, len(ps), len(qs))
	}
	r := newGTElement()
	if len(ps) == 0 {
		return r, nil
	}
	g1s := make([]bls12381.G1Affine, len(ps))
	g2s := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		g1s[i] = ps[i].(*G1Point).inner
		g2s[i] = qs[i].(*G2Point).inner
	}
	gt, err := bls12381.Pair(g1s, g2s)
	if err != nil {
		panic("bls381: pairing failed on group elements: " + err.Error())
	}
	r.inner = gt
	return r, nil
}
