// Package fairrand implements the commit/reveal protocol two parties use to
// produce a random value in [0, N) that neither of them controls.
//
// # Protocol
//
// The committing party draws a fresh secret key and a uniform secret value,
// then publishes an HMAC-SHA3-256 digest binding the two. The counterpart
// answers with its own value in [0, N). Only then are the key and the value
// disclosed, and the combined result is (input + value) mod N.
//
// # States
//
// A session moves through Created → Committed → CounterpartInputReceived →
// Revealed → Finalized. Each state is a distinct type: NewSession returns a
// *Committed, Receive turns it into a *Received, Reveal yields a Revealed and
// Finalize a Finalized. A secret can therefore not be revealed before the
// counterpart input exists.
//
// # Entropy
//
// Randomness comes from an injected io.Reader. Production code uses
// crypto/rand or the kyber suite stream; tests use fixed byte sequences to
// reproduce exact results.
package fairrand
