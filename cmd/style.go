package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/ledger"
)

// cardString renders a card with its suit coloured the way it is printed.
func cardString(c deck.Card) string {
	var suit string
	if c.Suit().IsRed() {
		suit = pterm.LightRed(c.Suit().Symbol())
	} else {
		suit = pterm.Black(c.Suit().Symbol())
	}
	return c.Rank().Short() + suit
}

func handString(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardString(c)
	}
	return strings.Join(parts, " - ")
}

func scoreString(score int, soft bool) string {
	s := strconv.Itoa(score)
	if soft {
		s = "soft " + s
	}
	if score > blackjack.BlackjackValue {
		return pterm.LightRed(s + " (bust)")
	}
	if score == blackjack.BlackjackValue {
		return pterm.LightGreen(s)
	}
	return s
}

func printHand(view application.RoundView) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintf("%s\nScore: %s\nCards left: %d", handString(view.PlayerCards), scoreString(view.PlayerScore, view.Soft), view.CardsLeft)
	pterm.Println(pbox.WithTitle(pterm.LightCyan(view.Player)).WithTitleTopLeft().Sprint(body))
}

// outcomePanel boxes the history line of a settled round.
func outcomePanel(rec ledger.RoundRecord) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var title string
	switch rec.Outcome.Kind {
	case blackjack.PlayerWin:
		title = pterm.LightGreen("|YOU WON|")
	case blackjack.Tie:
		title = pterm.LightYellow("|PUSH|")
	default:
		title = pterm.LightRed("|YOU LOST|")
	}
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(rec.Outcome.String())}
}

func handPanel(name string, cards []string, score int) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	body := strings.Join(cards, " - ")
	if body == "" {
		body = "-"
	}
	return pterm.Panel{Data: pbox.WithTitle(name).WithTitleTopLeft().Sprintf("%s\nScore: %d", body, score)}
}

func printRound(rec ledger.RoundRecord) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{
			handPanel(rec.Player, rec.PlayerCards, rec.Outcome.PlayerScore),
			handPanel(rec.Dealer, rec.DealerCards, rec.Outcome.DealerScore),
		},
		{outcomePanel(rec)},
	}).Render()
}

func statsTableData(s ledger.Stats) pterm.TableData {
	return pterm.TableData{
		{"Rounds", "Wins", "Losses", "Ties", "Busts", "Dealer busts"},
		{
			strconv.Itoa(s.Rounds),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Ties),
			strconv.Itoa(s.Busts),
			strconv.Itoa(s.DealerBust),
		},
	}
}

func historyTableData(rounds []ledger.RoundRecord) pterm.TableData {
	data := pterm.TableData{{"#", "Player", "Dealer", "Result"}}
	for i, r := range rounds {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strings.Join(r.PlayerCards, " "),
			strings.Join(r.DealerCards, " "),
			r.Outcome.String(),
		})
	}
	return data
}

func printSummary(rounds []ledger.RoundRecord, s ledger.Stats) {
	if s.Rounds == 0 {
		return
	}
	pterm.DefaultSection.Println("Session summary")
	if err := pterm.DefaultTable.WithHasHeader().WithData(historyTableData(rounds)).Render(); err != nil {
		pterm.Error.Println(err)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(statsTableData(s)).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
