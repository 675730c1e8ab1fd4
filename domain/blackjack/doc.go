// Package blackjack implements the rules engine for a single-player game of
// Blackjack against an automated dealer.
//
// # Core Types
//
// Hand: The cards held by one participant, scored with soft aces.
//
// Participant: A named seat at the table (the player or the dealer).
//
// Round: The state machine for one round of play. It deals, consumes the
// player's decisions and drives the dealer to completion.
//
// Outcome: The terminal result of a round.
//
// # Game Flow
//
// A round progresses Dealing → PlayerTurn → (Bust | DealerTurn) → Settled.
// The player receives two cards and then hits or stands. A bust ends the round
// before the dealer is dealt anything. Otherwise the dealer takes two cards and
// hits until reaching 17 or more, soft or hard.
//
// The package performs no I/O. Every draw is reported as an Event and every
// round ends with an Outcome; rendering them is up to the caller.
package blackjack
