package match

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ValentinPeron/gomoku-ai/internal/engine"
	"github.com/ValentinPeron/gomoku-ai/internal/game"
)

// Status is the lifecycle state of a match.
type Status int

const (
	StatusRunning Status = iota
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
	StatusBlocked
)

func (s Status) String() string {
	switch s {
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	case StatusBlocked:
		return "blocked"
	default:
		return "running"
	}
}

// TurnResult describes one advanced turn. Board is a snapshot clone so
// renderers can consume it from another goroutine; Candidates is the
// pre-move frontier the mover's engine considered, for highlighting.
type TurnResult struct {
	Round      int
	Player     game.PlayerColor
	Move       game.Move
	Moved      bool
	Score      float64
	ThinkTime  time.Duration
	Depth      int
	Status     Status
	Board      game.Board
	Candidates []game.Move
}

// Result summarizes a finished match.
type Result struct {
	Status     Status
	Winner     game.PlayerColor
	HasWinner  bool
	Rounds     int
	Duration   time.Duration
	BoardSize  int
	History    []game.HistoryEntry
	BlackStats engine.SearchStats
	WhiteStats engine.SearchStats
	BlackCache int
	WhiteCache int
}

// Runner plays one AI-vs-AI match on a single shared board. Both engines
// share one zobrist table but keep private caches. Black moves first and
// opens at the board center.
type Runner struct {
	settings game.Settings
	board    game.Board
	black    *engine.Engine
	white    *engine.Engine
	history  game.History
	status   Status
	toMove   game.PlayerColor
	round    int
	opened   bool
	started  time.Time
	finished time.Time
}

func NewRunner(settings game.Settings) *Runner {
	settings = settings.Normalize()
	r := &Runner{
		settings: settings,
		board:    game.NewBoard(settings.BoardSize),
		status:   StatusRunning,
		toMove:   game.PlayerBlack,
	}
	zobrist := engine.NewZobrist(settings.BoardSize)
	r.black = engine.New(&r.board, zobrist, game.PlayerBlack, game.PlayerWhite, settings.DepthBlack)
	r.white = engine.New(&r.board, zobrist, game.PlayerWhite, game.PlayerBlack, settings.DepthWhite)
	return r
}

func (r *Runner) Settings() game.Settings {
	return r.settings
}

func (r *Runner) Status() Status {
	return r.status
}

func (r *Runner) Done() bool {
	return r.status != StatusRunning
}

func (r *Runner) Board() game.Board {
	return r.board.Clone()
}

func (r *Runner) History() []game.HistoryEntry {
	return r.history.All()
}

// PlayTurn advances the match by one move. The first stone goes to the
// board center without consulting the engine; afterwards the mover's engine
// searches from scratch bounds. An engine returning no move means the board
// has no frontier left, which ends the match without a placed stone.
func (r *Runner) PlayTurn() (TurnResult, error) {
	if r.status != StatusRunning {
		return TurnResult{}, fmt.Errorf("match already finished: %s", r.status)
	}
	if r.round == 0 {
		r.started = time.Now()
	}
	r.round++

	mover := r.toMove
	eng := r.engineFor(mover)
	candidates := eng.AvailableMoves()

	start := time.Now()
	var move game.Move
	var score float64
	if !r.opened {
		center := r.settings.BoardSize / 2
		move = game.NewMove(center, center)
		r.opened = true
	} else {
		var ok bool
		score, move, ok = eng.FindBestMove(eng.MaxDepth(), math.Inf(-1), math.Inf(1), true)
		if !ok {
			// No move to play. With a non-full board the frontier is never
			// empty, so this is a full-board draw in practice; blocked
			// covers the remaining cases.
			r.status = StatusBlocked
			if r.board.CountEmpty() == 0 {
				r.status = StatusDraw
			}
			r.finished = time.Now()
			return r.turnResult(mover, game.Move{}, false, score, time.Since(start), candidates), nil
		}
	}
	think := time.Since(start)

	if err := r.board.Place(move.X, move.Y, game.CellFromPlayer(mover)); err != nil {
		return TurnResult{}, fmt.Errorf("round %d: %s plays %s: %w", r.round, mover, move, err)
	}

	r.history.Push(game.HistoryEntry{
		Round:     r.round,
		Player:    mover,
		Move:      move,
		Score:     score,
		ThinkTime: think,
		Depth:     eng.MaxDepth(),
	})

	switch {
	case eng.IsWinningMove(mover):
		if mover == game.PlayerBlack {
			r.status = StatusBlackWon
		} else {
			r.status = StatusWhiteWon
		}
	case r.board.CountEmpty() == 0:
		r.status = StatusDraw
	case r.round >= r.settings.MaxRounds:
		r.status = StatusDraw
	default:
		r.toMove = game.OtherPlayer(mover)
	}
	if r.status != StatusRunning {
		r.finished = time.Now()
	}

	log.Debug().
		Int("round", r.round).
		Stringer("player", mover).
		Stringer("move", move).
		Float64("score", score).
		Dur("think", think).
		Str("status", r.status.String()).
		Msg("turn played")

	return r.turnResult(mover, move, true, score, think, candidates), nil
}

// Run plays turns until the match ends, invoking handler after each one
// when non-nil.
func (r *Runner) Run(handler func(TurnResult)) (Result, error) {
	for !r.Done() {
		res, err := r.PlayTurn()
		if err != nil {
			return Result{}, err
		}
		if handler != nil {
			handler(res)
		}
	}
	return r.Result(), nil
}

// Result snapshots the match outcome. Valid once Done reports true.
func (r *Runner) Result() Result {
	winner := game.PlayerBlack
	hasWinner := false
	switch r.status {
	case StatusBlackWon:
		hasWinner = true
	case StatusWhiteWon:
		winner = game.PlayerWhite
		hasWinner = true
	}
	duration := time.Duration(0)
	if !r.started.IsZero() {
		end := r.finished
		if end.IsZero() {
			end = time.Now()
		}
		duration = end.Sub(r.started)
	}
	return Result{
		Status:     r.status,
		Winner:     winner,
		HasWinner:  hasWinner,
		Rounds:     r.round,
		Duration:   duration,
		BoardSize:  r.settings.BoardSize,
		History:    r.history.All(),
		BlackStats: r.black.Stats(),
		WhiteStats: r.white.Stats(),
		BlackCache: r.black.CacheSize(),
		WhiteCache: r.white.CacheSize(),
	}
}

func (r *Runner) engineFor(player game.PlayerColor) *engine.Engine {
	if player == game.PlayerBlack {
		return r.black
	}
	return r.white
}

func (r *Runner) turnResult(mover game.PlayerColor, move game.Move, moved bool, score float64, think time.Duration, candidates []game.Move) TurnResult {
	eng := r.engineFor(mover)
	return TurnResult{
		Round:      r.round,
		Player:     mover,
		Move:       move,
		Moved:      moved,
		Score:      score,
		ThinkTime:  think,
		Depth:      eng.MaxDepth(),
		Status:     r.status,
		Board:      r.board.Clone(),
		Candidates: candidates,
	}
}
