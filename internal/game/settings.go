package game

const (
	minBoardSize = 5
	maxBoardSize = 32
)

// Settings configures one match. Depths are per color so benchmark runs can
// pit different search depths against each other.
type Settings struct {
	BoardSize  int `json:"board_size"`
	DepthBlack int `json:"depth_black"`
	DepthWhite int `json:"depth_white"`
	MaxRounds  int `json:"max_rounds"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:  15,
		DepthBlack: 3,
		DepthWhite: 3,
		MaxRounds:  0,
	}
}

// Normalize clamps out-of-range values to playable ones. A MaxRounds of
// zero means one round per cell, the natural upper bound.
func (s Settings) Normalize() Settings {
	if s.BoardSize < minBoardSize {
		s.BoardSize = minBoardSize
	}
	if s.BoardSize > maxBoardSize {
		s.BoardSize = maxBoardSize
	}
	if s.DepthBlack < 1 {
		s.DepthBlack = 1
	}
	if s.DepthWhite < 1 {
		s.DepthWhite = 1
	}
	if s.MaxRounds <= 0 || s.MaxRounds > s.BoardSize*s.BoardSize {
		s.MaxRounds = s.BoardSize * s.BoardSize
	}
	return s
}
