package engine

import "github.com/ValentinPeron/gomoku-ai/internal/game"

// SearchStats counts the work one engine has done across its lifetime.
// Evals in particular distinguishes fresh evaluations from cache hits.
type SearchStats struct {
	Nodes    int64
	TTProbes int64
	TTHits   int64
	TTStores int64
	Evals    int64
	Cutoffs  int64
}

// Engine selects moves for one side by minimax with alpha-beta pruning over
// a board it shares with its caller. Every candidate it explores is placed
// and then reverted, so the board is bit-for-bit identical before and after
// a search. Each engine owns a private transposition table; the zobrist
// table is injected at construction so both sides of a match fingerprint
// positions the same way. Engines are single-threaded.
type Engine struct {
	board    *game.Board
	zobrist  *Zobrist
	tt       *TranspositionTable
	own      game.PlayerColor
	opp      game.PlayerColor
	ownCell  game.Cell
	oppCell  game.Cell
	maxDepth int
	stats    SearchStats
}

// New builds an engine playing own against opp on b. The zobrist table must
// match the board size. maxDepth is the depth the owner intends to search
// at; FindBestMove still takes depth explicitly so callers can probe
// shallower.
func New(b *game.Board, z *Zobrist, own, opp game.PlayerColor, maxDepth int) *Engine {
	return &Engine{
		board:    b,
		zobrist:  z,
		tt:       NewTranspositionTable(),
		own:      own,
		opp:      opp,
		ownCell:  game.CellFromPlayer(own),
		oppCell:  game.CellFromPlayer(opp),
		maxDepth: maxDepth,
	}
}

// FindBestMove searches the position to the given remaining depth and
// returns the alpha (maximizing) or beta (minimizing) bound reached plus
// the move that achieved it. The boolean is false when no move is attached:
// transposition hits, terminal positions, and empty candidate lists return
// a score only, and callers expecting a move must treat that as the
// no-moves condition rather than an error. The root call is
// FindBestMove(maxDepth, -Inf, +Inf, true).
func (e *Engine) FindBestMove(depth int, alpha, beta float64, maximizing bool) (float64, game.Move, bool) {
	e.stats.Nodes++

	key := e.zobrist.Hash(*e.board)
	e.stats.TTProbes++
	if score, ok := e.tt.Probe(key, depth); ok {
		e.stats.TTHits++
		return score, game.Move{}, false
	}

	if depth <= 0 || e.IsWinningMove(e.own) || e.IsWinningMove(e.opp) {
		score := e.evaluate()
		e.tt.Store(key, score, depth)
		e.stats.TTStores++
		return score, game.Move{}, false
	}

	moves := e.AvailableMoves()
	if len(moves) == 0 {
		return e.evaluate(), game.Move{}, false
	}

	cell := e.oppCell
	if maximizing {
		cell = e.ownCell
	}

	bestMove := game.Move{}
	found := false
	for _, move := range moves {
		undo := e.place(move, cell)
		score, _, _ := e.FindBestMove(depth-1, alpha, beta, !maximizing)
		undo()

		if maximizing && score > alpha {
			alpha = score
			bestMove = move
			found = true
		}
		if !maximizing && score < beta {
			beta = score
			bestMove = move
			found = true
		}
		if beta <= alpha {
			e.stats.Cutoffs++
			break
		}
	}
	if maximizing {
		return alpha, bestMove, found
	}
	return beta, bestMove, found
}

// AvailableMoves lists the candidate cells the search will consider, in
// search order.
func (e *Engine) AvailableMoves() []game.Move {
	return CandidateMoves(*e.board)
}

// IsWinningMove reports whether role already has a completed winning line
// on the shared board.
func (e *Engine) IsWinningMove(role game.PlayerColor) bool {
	return IsWinningLine(*e.board, game.CellFromPlayer(role))
}

func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

func (e *Engine) Role() game.PlayerColor {
	return e.own
}

// CacheSize returns the number of cached positions accumulated so far.
func (e *Engine) CacheSize() int {
	return e.tt.Len()
}

// Stats returns a copy of the engine's counters.
func (e *Engine) Stats() SearchStats {
	return e.stats
}

// place puts cell on the board and returns the matching revert action. The
// search runs the revert on every exit path of a step, pruning included.
func (e *Engine) place(move game.Move, cell game.Cell) func() {
	e.board.Set(move.X, move.Y, cell)
	return func() { e.board.Remove(move.X, move.Y) }
}

func (e *Engine) evaluate() float64 {
	e.stats.Evals++
	return Evaluate(*e.board, e.ownCell, e.oppCell)
}
