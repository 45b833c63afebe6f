package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
	"github.com/ValentinPeron/gomoku-ai/internal/match"
	"github.com/ValentinPeron/gomoku-ai/internal/record"
)

type gameOutcome struct {
	res         match.Result
	aPlaysBlack bool
}

func main() {
	size := flag.Int("size", 9, "board size")
	games := flag.Int("games", 10, "number of games to play")
	depthA := flag.Int("depth-a", 3, "search depth for engine A")
	depthB := flag.Int("depth-b", 2, "search depth for engine B")
	workers := flag.Int("workers", 4, "games played concurrently")
	out := flag.String("out", "", "directory to write a parquet record of all games")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	setupLogging(*logLevel)
	if *workers < 1 {
		*workers = 1
	}

	log.Info().
		Int("size", *size).
		Int("games", *games).
		Int("depth_a", *depthA).
		Int("depth_b", *depthB).
		Int("workers", *workers).
		Msg("starting benchmark")

	start := time.Now()
	outcomes := make([]gameOutcome, *games)

	var group errgroup.Group
	group.SetLimit(*workers)
	for i := 0; i < *games; i++ {
		group.Go(func() error {
			// Alternate colors so neither engine keeps the first-move edge.
			aPlaysBlack := i%2 == 0
			settings := game.DefaultSettings()
			settings.BoardSize = *size
			if aPlaysBlack {
				settings.DepthBlack = *depthA
				settings.DepthWhite = *depthB
			} else {
				settings.DepthBlack = *depthB
				settings.DepthWhite = *depthA
			}

			res, err := match.NewRunner(settings).Run(nil)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			outcomes[i] = gameOutcome{res: res, aPlaysBlack: aPlaysBlack}
			log.Info().
				Int("game", i+1).
				Str("status", res.Status.String()).
				Int("rounds", res.Rounds).
				Dur("duration", res.Duration).
				Msg("game finished")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
	elapsed := time.Since(start)

	var aWins, bWins, draws int
	for _, o := range outcomes {
		switch {
		case !o.res.HasWinner:
			draws++
		case (o.res.Winner == game.PlayerBlack) == o.aPlaysBlack:
			aWins++
		default:
			bWins++
		}
	}

	totalNodes := lo.SumBy(outcomes, func(o gameOutcome) int64 {
		return o.res.BlackStats.Nodes + o.res.WhiteStats.Nodes
	})
	totalRounds := lo.SumBy(outcomes, func(o gameOutcome) int { return o.res.Rounds })
	thinking := lo.SumBy(outcomes, func(o gameOutcome) time.Duration { return o.res.Duration })
	nps := 0.0
	if thinking > 0 {
		nps = float64(totalNodes) / thinking.Seconds()
	}

	fmt.Println("=== Final Score ===")
	fmt.Printf("Engine A (depth %d): %d wins\n", *depthA, aWins)
	fmt.Printf("Engine B (depth %d): %d wins\n", *depthB, bWins)
	fmt.Printf("Draws: %d\n", draws)
	fmt.Printf("Games: %d | Rounds: %d | Wall time: %.2fs\n", *games, totalRounds, elapsed.Seconds())
	fmt.Printf("Nodes: %s | NPS: %s\n", humanize.Comma(totalNodes), humanize.Comma(int64(nps)))

	if *out != "" {
		rows := lo.FlatMap(outcomes, func(o gameOutcome, _ int) []record.MoveRow {
			return record.Rows(o.res)
		})
		path, err := record.WriteMatches(*out, rows)
		if err != nil {
			log.Fatal().Err(err).Msg("record games")
		}
		log.Info().Str("path", path).Int("rows", len(rows)).Msg("games recorded")
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
