package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
	"github.com/ValentinPeron/gomoku-ai/internal/match"
	"github.com/ValentinPeron/gomoku-ai/internal/record"
	"github.com/ValentinPeron/gomoku-ai/internal/ui"
)

func main() {
	size := flag.Int("size", 15, "board size")
	depth := flag.Int("depth", 3, "search depth for both engines")
	watch := flag.Bool("watch", false, "render the match live in a TUI")
	out := flag.String("out", "", "directory to write a parquet record of the match")
	quiet := flag.Bool("quiet", false, "suppress per-round board rendering")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	setupLogging(*logLevel)

	settings := game.DefaultSettings()
	settings.BoardSize = *size
	settings.DepthBlack = *depth
	settings.DepthWhite = *depth
	settings = settings.Normalize()

	runner := match.NewRunner(settings)
	log.Info().
		Int("size", settings.BoardSize).
		Int("depth", settings.DepthBlack).
		Msg("starting match")

	var result match.Result
	var err error
	if *watch {
		result, err = runWatched(runner, settings)
	} else {
		result, err = runner.Run(func(res match.TurnResult) {
			if !*quiet {
				fmt.Println(ui.RenderTurn(res))
			}
		})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}

	fmt.Println(ui.RenderSummary(result))

	totalNodes := result.BlackStats.Nodes + result.WhiteStats.Nodes
	nps := 0.0
	if result.Duration > 0 {
		nps = float64(totalNodes) / result.Duration.Seconds()
	}
	log.Info().
		Str("status", result.Status.String()).
		Int("rounds", result.Rounds).
		Dur("duration", result.Duration).
		Str("nodes", humanize.Comma(totalNodes)).
		Float64("nps", nps).
		Int("black_cache", result.BlackCache).
		Int("white_cache", result.WhiteCache).
		Msg("match complete")

	if *out != "" {
		path, err := record.WriteMatches(*out, record.Rows(result))
		if err != nil {
			log.Fatal().Err(err).Msg("record match")
		}
		log.Info().Str("path", path).Msg("match recorded")
	}
}

// runWatched plays the match in a goroutine and feeds turns to the TUI.
// The buffer holds a full game so the match never blocks on a closed view.
func runWatched(runner *match.Runner, settings game.Settings) (match.Result, error) {
	updates := make(chan match.TurnResult, settings.MaxRounds+1)
	resCh := make(chan match.Result, 1)
	errCh := make(chan error, 1)
	go func() {
		res, err := runner.Run(func(tr match.TurnResult) {
			updates <- tr
		})
		close(updates)
		if err != nil {
			errCh <- err
			return
		}
		resCh <- res
	}()

	program := tea.NewProgram(ui.NewWatchModel(updates), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return match.Result{}, fmt.Errorf("watch ui: %w", err)
	}

	select {
	case err := <-errCh:
		return match.Result{}, err
	case res := <-resCh:
		return res, nil
	}
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
