package engine

import (
	"testing"

	"github.com/matryer/is"
)

func TestProbeHonorsStoredDepth(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable()
	tt.Store(42, 3.5, 3)

	score, ok := tt.Probe(42, 3)
	is.True(ok)
	is.Equal(score, 3.5)

	// A deeper entry satisfies a shallower request.
	score, ok = tt.Probe(42, 2)
	is.True(ok)
	is.Equal(score, 3.5)

	// A shallower entry never satisfies a deeper request.
	_, ok = tt.Probe(42, 4)
	is.True(!ok)
}

func TestProbeMissesUnknownKey(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable()
	_, ok := tt.Probe(7, 0)
	is.True(!ok)
}

func TestStoreOverwrites(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable()
	tt.Store(42, 1.0, 1)
	tt.Store(42, 2.0, 5)

	score, ok := tt.Probe(42, 5)
	is.True(ok)
	is.Equal(score, 2.0)
	is.Equal(tt.Len(), 1)
}
