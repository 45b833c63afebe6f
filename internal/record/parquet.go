package record

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
	"github.com/ValentinPeron/gomoku-ai/internal/match"
)

// MoveRow is one applied move of one match. Winner is backfilled onto every
// row of the game once the outcome is known: 1 black, 2 white, 0 none.
type MoveRow struct {
	GameID    string  `parquet:"game_id,dict"`
	BoardSize int32   `parquet:"board_size"`
	Round     int32   `parquet:"round"`
	Player    int32   `parquet:"player"`
	X         int32   `parquet:"x"`
	Y         int32   `parquet:"y"`
	Score     float64 `parquet:"score"`
	ThinkMs   float64 `parquet:"think_ms"`
	Depth     int32   `parquet:"depth"`
	Winner    int32   `parquet:"winner"`
	Status    string  `parquet:"status,dict"`
}

// Rows flattens a finished match into MoveRows under a fresh game id.
func Rows(res match.Result) []MoveRow {
	gameID := uuid.NewString()
	winner := int32(0)
	if res.HasWinner {
		winner = playerToInt(res.Winner)
	}
	rows := make([]MoveRow, 0, len(res.History))
	for _, entry := range res.History {
		rows = append(rows, MoveRow{
			GameID:    gameID,
			BoardSize: int32(res.BoardSize),
			Round:     int32(entry.Round),
			Player:    playerToInt(entry.Player),
			X:         int32(entry.Move.X),
			Y:         int32(entry.Move.Y),
			Score:     entry.Score,
			ThinkMs:   float64(entry.ThinkTime.Milliseconds()),
			Depth:     int32(entry.Depth),
			Winner:    winner,
			Status:    res.Status.String(),
		})
	}
	return rows
}

// WriteMatches writes rows into outDir as a single parquet file, staging in
// outDir/tmp and renaming so readers never observe a partial file. The
// returned path is the final file.
func WriteMatches(outDir string, rows []MoveRow) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no rows to write")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("matches_%d.parquet", time.Now().UnixNano())
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "gomoku_move_v1"),
		parquet.KeyValueMetadata("created_at", time.Now().UTC().Format(time.RFC3339)),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}
	return finalPath, nil
}

func playerToInt(player game.PlayerColor) int32 {
	if player == game.PlayerBlack {
		return 1
	}
	return 2
}
