// Package ledger implements an append-only, hash-chained history of settled
// Blackjack rounds.
//
// # Core Components
//
// Ledger: An append-only log of round records with SHA-256 hash chaining for
// tamper detection.
//
// Block: A single settled round containing the hands, the player's decisions,
// the outcome and the link to the previous block.
//
// # Properties
//
// The ledger provides:
//   - Immutability: callers only ever receive copies of blocks
//   - Verifiability: Verify recomputes every hash and link in the chain
//   - Auditability: the complete history of the session, in play order
//
// # Usage
//
// Create a ledger with New, then Append a RoundRecord every time a round is
// settled. Stats tallies the outcomes recorded so far.
package ledger
