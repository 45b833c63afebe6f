package record

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/parquet-go/parquet-go"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
	"github.com/ValentinPeron/gomoku-ai/internal/match"
)

func sampleResult() match.Result {
	return match.Result{
		Status:    match.StatusBlackWon,
		Winner:    game.PlayerBlack,
		HasWinner: true,
		Rounds:    2,
		Duration:  3 * time.Second,
		BoardSize: 9,
		History: []game.HistoryEntry{
			{Round: 1, Player: game.PlayerBlack, Move: game.NewMove(4, 4), Score: 0, ThinkTime: 5 * time.Millisecond, Depth: 2},
			{Round: 2, Player: game.PlayerWhite, Move: game.NewMove(3, 3), Score: -1.2, ThinkTime: 250 * time.Millisecond, Depth: 2},
		},
	}
}

func TestRowsBackfillWinner(t *testing.T) {
	is := is.New(t)
	rows := Rows(sampleResult())

	is.Equal(len(rows), 2)
	is.True(rows[0].GameID != "")
	is.Equal(rows[0].GameID, rows[1].GameID)
	for _, row := range rows {
		is.Equal(row.Winner, int32(1))
		is.Equal(row.Status, "black_won")
		is.Equal(row.BoardSize, int32(9))
	}
	is.Equal(rows[0].Round, int32(1))
	is.Equal(rows[0].Player, int32(1))
	is.Equal(rows[0].X, int32(4))
	is.Equal(rows[0].Y, int32(4))
	is.Equal(rows[1].Player, int32(2))
	is.Equal(rows[1].ThinkMs, 250.0)
}

func TestRowsWithoutWinner(t *testing.T) {
	is := is.New(t)
	res := sampleResult()
	res.Status = match.StatusDraw
	res.HasWinner = false

	rows := Rows(res)
	is.Equal(len(rows), 2)
	for _, row := range rows {
		is.Equal(row.Winner, int32(0))
		is.Equal(row.Status, "draw")
	}
}

func TestDistinctGamesGetDistinctIDs(t *testing.T) {
	is := is.New(t)
	a := Rows(sampleResult())
	b := Rows(sampleResult())
	is.True(a[0].GameID != b[0].GameID)
}

func TestWriteMatchesRoundTrip(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	rows := Rows(sampleResult())
	path, err := WriteMatches(dir, rows)
	is.NoErr(err)

	read, err := parquet.ReadFile[MoveRow](path)
	is.NoErr(err)
	is.Equal(len(read), len(rows))
	is.Equal(read[0].GameID, rows[0].GameID)
	is.Equal(read[1].X, rows[1].X)
}

func TestWriteMatchesRejectsEmptyInput(t *testing.T) {
	is := is.New(t)
	_, err := WriteMatches(t.TempDir(), nil)
	is.True(err != nil)
}
