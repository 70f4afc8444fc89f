// Package ledger keeps an in-memory, hash-chained transcript of every
// fair-random session of a game.
//
// # Core Components
//
// Transcript: an append-only log of finalized sessions. Each block links to
// the hash of the previous one.
//
// Record: the disclosed material of one session (commitment, key, value,
// counterpart input and combined result).
//
// # Security Properties
//
//   - Tamper detection: modifying a block breaks the hash chain
//   - Verifiability: Verify replays every commitment and combined result
//
// The transcript lives for a single run and is never written to disk.
package ledger
