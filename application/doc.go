// Package application runs a Blackjack session: it owns the deck, both
// participants and the round ledger, and repeats rounds until the
// Controller chooses to quit.
//
// The session loop is single-threaded. The only blocking calls are those to
// the Controller, which supplies the player's decisions.
package application
