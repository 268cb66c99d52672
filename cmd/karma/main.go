package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"karma/internal/config"
	"karma/pkg/bot"
	"karma/pkg/controller"
	"karma/pkg/karma"
	"karma/pkg/printer"
)

var humans = flag.Int("humans", -1, "the number of players at the console, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *humans >= 0 {
		cfg.Humans = *humans
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}

	prompts := controller.NewPromptManager()
	if cfg.PromptsFile != "" {
		var err error
		if prompts, err = controller.LoadPromptManager(cfg.PromptsFile); err != nil {
			logrus.WithError(err).Fatal("could not load prompts")
		}
	}

	logger := logrus.StandardLogger()
	board, err := karma.RandomStart(logger, karma.RandomStartOptions{
		Players:   cfg.Players,
		Jokers:    cfg.Jokers,
		WhoStarts: cfg.WhoStarts,
		Seed:      cfg.Seed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not deal the board")
	}

	console := controller.NewConsole(os.Stdin, os.Stdout)
	seats := make([]controller.Controller, cfg.Players)
	for i := range seats {
		if i < cfg.Humans {
			seats[i] = console
			continue
		}

		policy := bot.NewIntegrationBot("")
		policy.SetBoard(board)
		seats[i] = controller.NewBotController(policy, cfg.Bot.Delay, logger)
		logrus.WithFields(logrus.Fields{"seat": i, "bot": policy.Name()}).Info("seated a bot")
	}

	game := karma.NewGame(logger, board, controller.NewTable(board.PlayerIndex, seats...), karma.Options{
		TurnLimit: cfg.TurnLimit,
		Printer:   printer.New(os.Stdout, board),
		Prompts:   prompts,
	})

	if err := game.MulliganAll(); err != nil {
		stop(err)
	}

	if err := game.ChooseStartDirection(); err != nil {
		stop(err)
	}

	result, err := game.Play()
	if err != nil {
		stop(err)
	}

	if result.TurnLimitHit {
		pterm.Warning.Printfln("No winner after %d turns", result.TurnsPlayed)
	}

	winners := make([]string, 0)
	for _, i := range result.Ranks.Winners() {
		winners = append(winners, fmt.Sprintf("player %d", i))
	}

	pterm.Success.Printfln("Winners: %s (ranks %s)", strings.Join(winners, ", "), result.Ranks)
}

func stop(err error) {
	if errors.Is(err, controller.ErrQuit) {
		fmt.Println("Goodbye")
		os.Exit(0)
	}

	logrus.WithError(err).Fatal("game stopped")
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
