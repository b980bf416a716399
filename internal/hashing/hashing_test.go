package hashing

import (
	"testing"

	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(engine.NewPosition())
	hash2 := GenerateZobristHash(engine.MustParseFEN(testutil.StartFEN))

	if hash1 != hash2 {
		t.Errorf("Identical positions produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"pawn moved", testutil.StartFEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"side to move", testutil.StartFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"},
		{"castling rights", testutil.StartFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kkq - 0 1"},
		{"en passant", testutil.AfterE4FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
		{"colour of piece", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := GenerateZobristHash(engine.MustParseFEN(tt.a))
			b := GenerateZobristHash(engine.MustParseFEN(tt.b))
			if a == b {
				t.Errorf("Different positions produced the same hash %x", a)
			}
		})
	}
}

func TestZobristHashIgnoresCounters(t *testing.T) {
	a := GenerateZobristHash(engine.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	b := GenerateZobristHash(engine.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 37 80"))
	testutil.AssertEqual(t, a, b)
}

// TestZobristHashTransposition verifies move order does not matter
func TestZobristHashTransposition(t *testing.T) {
	a, err := engine.NewPosition().Replay(testutil.Moves("Nf3 Nf6 Nc3"))
	testutil.RequireNoError(t, err)
	b, err := engine.NewPosition().Replay(testutil.Moves("Nc3 Nf6 Nf3"))
	testutil.RequireNoError(t, err)

	testutil.AssertEqual(t, GenerateZobristHash(a[3]), GenerateZobristHash(b[3]))
}

func TestWeakHashConsistency(t *testing.T) {
	hash1 := WeakHash(engine.NewPosition())
	hash2 := WeakHash(engine.MustParseFEN(testutil.StartFEN))

	if hash1 != hash2 {
		t.Errorf("Identical positions produced different weak hashes: %x != %x", hash1, hash2)
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	start := engine.NewPosition()
	if detector.CheckAndAdd(start) {
		t.Error("First position should not be a duplicate")
	}
	if !detector.CheckAndAdd(start) {
		t.Error("Same position should be a duplicate")
	}

	other := engine.MustParseFEN(testutil.AfterE4FEN)
	if detector.CheckAndAdd(other) {
		t.Error("Different position should not be a duplicate")
	}

	testutil.AssertEqual(t, detector.DuplicateCount(), 1)
	testutil.AssertEqual(t, detector.UniqueCount(), 2)

	detector.Reset()
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 0)
	testutil.AssertFalse(t, detector.CheckAndAdd(start), "reset forgets positions")
}

func TestDuplicateDetector_Counters(t *testing.T) {
	early := engine.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	late := engine.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 12 40")

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(early)
	testutil.AssertTrue(t, loose.CheckAndAdd(late), "counters ignored")

	strict := NewDuplicateDetector(true, 0)
	strict.CheckAndAdd(early)
	testutil.AssertFalse(t, strict.CheckAndAdd(late), "counters compared")
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)

	detector.CheckAndAdd(engine.NewPosition())
	testutil.AssertTrue(t, detector.IsFull())

	after := engine.MustParseFEN(testutil.AfterE4FEN)
	testutil.AssertFalse(t, detector.CheckAndAdd(after))
	testutil.AssertFalse(t, detector.CheckAndAdd(after), "not recorded once full")
	testutil.AssertTrue(t, detector.CheckAndAdd(engine.NewPosition()), "recorded positions still match")
	testutil.AssertEqual(t, detector.UniqueCount(), 1)
}
