package application

import (
	"log/slog"

	"github.com/luca-patrignani/blackjack/ledger"
)

type sessionOption func(Session) Session

func WithPlayerName(name string) sessionOption {
	return func(s Session) Session {
		if name != "" {
			s.playerName = name
		}
		return s
	}
}

func WithDealerName(name string) sessionOption {
	return func(s Session) Session {
		if name != "" {
			s.dealerName = name
		}
		return s
	}
}

func WithLogger(logger *slog.Logger) sessionOption {
	return func(s Session) Session {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}

// WithIDGenerator replaces the round id generator (uuid by default).
func WithIDGenerator(newID func() string) sessionOption {
	return func(s Session) Session {
		if newID != nil {
			s.newID = newID
		}
		return s
	}
}

// WithLedger records rounds into l instead of a fresh ledger.
func WithLedger(l *ledger.Ledger) sessionOption {
	return func(s Session) Session {
		if l != nil {
			s.ledger = l
		}
		return s
	}
}
