package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/application"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [-name player] [-seed n] [-log-level level]\n%v\n", os.Args[0], err)
		os.Exit(2)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(cfg.ptermLevel()))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	name := cfg.name
	if name == "" {
		name, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("Player").Show()
		name = strings.TrimSpace(name)
		pterm.Println()
	}
	pterm.Info.Printfln("Good luck, %s", name)
	if cfg.seed != 0 {
		logger.Info("using seeded shuffle", "seed", cfg.seed)
	}

	session := application.NewSession(cfg.source(),
		application.WithPlayerName(name),
		application.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = session.Play(ctx, newConsoleController(logger))
	printSummary(session.Ledger().Rounds(), session.Stats())
	if verr := session.Ledger().Verify(); verr != nil {
		logger.Error("history corrupted", "error", verr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session aborted", "error", err)
		stop()
		os.Exit(1)
	}
}
