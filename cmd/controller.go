package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

var decisionOptions = []string{"Hit", "Stand"}

// consoleController asks the player through interactive pterm prompts.
type consoleController struct {
	logger *slog.Logger
}

func newConsoleController(logger *slog.Logger) *consoleController {
	return &consoleController{logger: logger}
}

func (c *consoleController) Decide(ctx context.Context, view application.RoundView) (blackjack.Decision, error) {
	printHand(view)
	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Do you want to hit or stand?").WithOptions(decisionOptions).Show()
	if err != nil {
		return "", err
	}
	pterm.Println()
	return decisionFromLabel(selected), nil
}

func (c *consoleController) Observe(ev blackjack.Event) {
	switch ev.Kind {
	case blackjack.EventTurnStarted:
		pterm.DefaultSection.Printfln("%s is playing...", ev.Participant)
	case blackjack.EventCardDrawn:
		pterm.Info.Printfln("To %s, card dealt is %s (%s), value %d", pterm.LightCyan(ev.Participant), ev.Card, cardString(ev.Card), ev.CardValue)
	case blackjack.EventBust:
		pterm.Warning.Printfln("%s went bust with %d", ev.Participant, ev.Score)
	default:
		c.logger.Warn("unknown event", "kind", string(ev.Kind))
	}
}

func (c *consoleController) Settled(ctx context.Context, rec ledger.RoundRecord) (blackjack.ReplayChoice, error) {
	printRound(rec)
	again, err := pterm.DefaultInteractiveConfirm.WithDefaultText("Do you want to play again?").WithDefaultValue(true).Show()
	if err != nil {
		return "", err
	}
	pterm.Println()
	if again {
		return blackjack.Replay, nil
	}
	return blackjack.Quit, nil
}

// decisionFromLabel maps a prompt label, or its first letter, to a Decision.
// Anything else is passed through and rejected by the round.
func decisionFromLabel(label string) blackjack.Decision {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "hit", "h":
		return blackjack.Hit
	case "stand", "s":
		return blackjack.Stand
	default:
		return blackjack.Decision(label)
	}
}
