// Package spseq implements structure-preserving signatures on
// equivalence classes (SPS-EQ) over an arbitrary pairing suite.
//
// An SPS-EQ signs a vector of G1 points and treats all scalar
// multiples of that vector as one equivalence class. Anyone holding a
// valid message/signature pair can move it to a different
// representative of the class with [Scheme.ChangeRep], without the
// secret key and without the results being linkable. This makes the
// scheme a building block for delegatable anonymous credentials and
// mercurial signature constructions.
//
// # Example
//
// Sign a message vector and rerandomize it:
//
//	e := &bls381.Suite{}
//	scheme, _ := spseq.New(e, 16)
//	priv, pub, _ := scheme.GenerateKey(rand.Reader)
//
//	msg, _ := scheme.RandomMessage(rand.Reader)
//	sig, _ := scheme.Sign(rand.Reader, priv, msg)
//	if err := scheme.Verify(pub, msg, sig); err != nil {
//	    // signature rejected
//	}
//
//	// Move to a fresh representative of the same class.
//	mu, _ := e.G1().RandomScalar(rand.Reader)
//	psi, _ := e.G1().RandomScalar(rand.Reader)
//	msg2, sig2, _ := scheme.ChangeRep(msg, sig, mu, psi)
//	err := scheme.Verify(pub, msg2, sig2)
//
// # Security Considerations
//
// The scheme is existentially unforgeable under chosen-message attack
// in the generic group model, and signatures output by ChangeRep are
// distributed identically to fresh signatures on the new
// representative.
//
// Signatures and public keys decoded from untrusted bytes go through
// the full validity check; components outside the prime-order subgroup
// are rejected before any pairing runs.
package spseq
