package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/testutil"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

func replayLine(index int, fen, moves string) worker.ProcessResult {
	return worker.Replayer(0)(worker.WorkItem{
		Start:  engine.MustParseFEN(fen),
		Moves:  testutil.Moves(moves),
		Source: moves,
		Index:  index,
	})
}

// TestFENWriter_WriteResult verifies only the final FEN is written by default
func TestFENWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewFENWriter(&buf, cfg)
	testutil.RequireNoError(t, writer.WriteResult(replayLine(0, testutil.StartFEN, "e4")))
	testutil.RequireNoError(t, writer.Close())

	testutil.AssertEqual(t, buf.String(), testutil.AfterE4FEN+"\n")
}

// TestFENWriter_AllPlies verifies every position is written with headers
func TestFENWriter_AllPlies(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithAllPlies(true).Build()
	cfg.Output.ShowMoveNumbers = true

	writer := NewResultWriter(&buf, cfg)
	testutil.RequireNoError(t, writer.WriteResult(replayLine(1, testutil.StartFEN, "e4")))

	want := "line 2 start\n" +
		testutil.StartFEN + "\n" +
		"line 2 ply 1 e4\n" +
		testutil.AfterE4FEN + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestFENWriter_FailedLine verifies the last reached position is written
func TestFENWriter_FailedLine(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	result := replayLine(0, testutil.StartFEN, "e4 Ke3 e5")
	testutil.AssertTrue(t, result.Err != nil, "replay should fail")

	writer := NewFENWriter(&buf, cfg)
	testutil.RequireNoError(t, writer.WriteResult(result))
	testutil.AssertEqual(t, buf.String(), testutil.AfterE4FEN+"\n")
}

// TestBoardWriter_WriteResult verifies the diagram and candidate query
func TestBoardWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutputFormat(config.Board).
		WithCandidatesFrom("g1").
		Build()

	writer := NewResultWriter(&buf, cfg)
	testutil.RequireNoError(t, writer.WriteResult(replayLine(0, testutil.StartFEN, "")))

	want := "rnbqkbnr\n" +
		"pppppppp\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"PPPPPPPP\n" +
		"RNBQKBNR\n" +
		testutil.StartFEN + "\n" +
		"\n" +
		"candidates g1 (white Knight): f3 h3\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestJSONWriter_WriteResult verifies JSON writer batches into an array
func TestJSONWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSON).WithIndentedJSON(true).Build()

	writer := NewResultWriter(&buf, cfg)
	testutil.RequireNoError(t, writer.WriteResult(replayLine(0, testutil.StartFEN, "e4 e5")))
	testutil.RequireNoError(t, writer.WriteResult(replayLine(1, testutil.StartFEN, "e4 exd5")))

	if buf.Len() != 0 {
		t.Fatal("JSON writer should buffer until Close")
	}
	testutil.RequireNoError(t, writer.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(out.Lines), 2)

	first := out.Lines[0]
	testutil.AssertEqual(t, first.Line, 1)
	testutil.AssertEqual(t, first.PlyCount, 2)
	testutil.AssertEqual(t, first.Moves[0], JSONMove{Ply: 1, MoveNumber: 1, Color: "white", SAN: "e4", Piece: "pawn", From: "e2", To: "e4"})
	testutil.AssertEqual(t, first.Moves[1].Color, "black")
	testutil.AssertEqual(t, first.Moves[1].MoveNumber, 0)
	testutil.AssertTrue(t, first.Error == nil)
	testutil.AssertEqual(t, len(first.Hash), 16)
	testutil.AssertTrue(t, first.Hash != out.Lines[1].Hash, "different finals hash differently")

	second := out.Lines[1]
	testutil.AssertEqual(t, second.FinalFEN, testutil.AfterE4FEN)
	testutil.AssertEqual(t, second.Error.Class, "unsupported")
	testutil.AssertEqual(t, second.Error.Ply, 2)
	testutil.AssertEqual(t, second.Error.Move, "exd5")
}

// TestJSONWriterSingle verifies one document per result
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewJSONWriterSingle(&buf, cfg)
	testutil.RequireNoError(t, writer.WriteResult(replayLine(0, testutil.StartFEN, "Nf3")))
	testutil.RequireNoError(t, writer.WriteResult(replayLine(1, testutil.StartFEN, "Nf4")))
	testutil.RequireNoError(t, writer.Close())

	docs := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(docs), 2)

	var line JSONLine
	testutil.RequireNoError(t, json.Unmarshal([]byte(docs[1]), &line))
	testutil.AssertEqual(t, line.Error.Class, "illegal")
	testutil.AssertEqual(t, line.PlyCount, 0)
}

func TestResultToJSON_Candidates(t *testing.T) {
	cfg := config.NewConfigBuilder().WithCandidatesFrom("e2").WithAllPlies(true).Build()

	jl := ResultToJSON(replayLine(0, testutil.StartFEN, "Nf3"), cfg)
	testutil.AssertEqual(t, jl.Candidates, &JSONCandidates{From: "e2", Piece: "white Pawn", Targets: []string{"e3", "e4"}})
	testutil.AssertEqual(t, jl.Moves[0].FEN, "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1")

	cfg.Query.CandidatesFrom = "e4"
	jl = ResultToJSON(replayLine(0, testutil.StartFEN, "Nf3"), cfg)
	testutil.AssertTrue(t, jl.Candidates == nil, "empty square has no candidates")
}

func TestErrorClass(t *testing.T) {
	tests := []struct {
		moves string
		want  string
	}{
		{"e4 e5 Nxe5", "unsupported"},
		{"e4 e5 Ne5", "illegal"},
		{"e4 e5 N!", "format"},
		{"O-O", "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.moves, func(t *testing.T) {
			result := replayLine(0, testutil.StartFEN, tt.moves)
			testutil.AssertEqual(t, ErrorClass(result.Err), tt.want)
		})
	}
	testutil.AssertEqual(t, ErrorClass(bytes.ErrTooLarge), "error")
}

// TestWriters_UnreplayedLine verifies a line that never started writes no position
func TestWriters_UnreplayedLine(t *testing.T) {
	result := worker.ProcessResult{Index: 4, Source: "bad", Err: errors.ErrInvalidFEN}

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithCandidatesFrom("e2").Build()
	testutil.RequireNoError(t, NewFENWriter(&buf, cfg).WriteResult(result))
	testutil.AssertEqual(t, buf.String(), "")

	jl := ResultToJSON(result, cfg)
	testutil.AssertEqual(t, jl.Line, 5)
	testutil.AssertEqual(t, jl.FinalFEN, "")
	testutil.AssertEqual(t, jl.Error.Class, "error")
	testutil.AssertTrue(t, jl.Candidates == nil)
}
