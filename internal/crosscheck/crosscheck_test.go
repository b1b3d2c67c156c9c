package crosscheck

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
)

var scriptedGames = []struct {
	name  string
	start string
	moves []string
}{
	{"fools mate", mg.FENStartPos, []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
	{"scholars mate", mg.FENStartPos, []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}},
	{"both sides castle", mg.FENStartPos, []string{
		"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1", "g8f6",
		"d2d3", "e8g8", "c1g5", "d7d6", "b1c3", "c8g4", "d1d2", "d8d7",
	}},
	{"en passant and promotion", "4k3/1P6/8/8/5p2/8/4P3/4K3 w - - 0 1", []string{
		"e2e4", "f4e3", "b7b8q", "e8d7", "b8b5", "d7e6", "e1f1", "e3e2",
		"f1e1", "e6f6", "b5c6", "f6f5",
	}},
}

func TestScriptedGamesAgree(t *testing.T) {
	for _, sg := range scriptedGames {
		if err := Game(sg.start, sg.moves, Default()...); err != nil {
			t.Fatalf("%s: %v", sg.name, err)
		}
	}
}

func TestWalkStartPosition(t *testing.T) {
	nodes, err := Walk(mg.StartPosition(), 2, Default()...)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if nodes != 400 {
		t.Fatalf("Walk nodes: got %d want 400", nodes)
	}
}

func TestWalkTacticalPositions(t *testing.T) {
	for _, fen := range []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	} {
		pos, err := mg.ParsePosition(fen)
		if err != nil {
			t.Fatalf("ParsePosition: %v", err)
		}
		if _, err := Walk(pos, 1, Default()...); err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
	}
}

func TestWalkRankPinnedEnPassant(t *testing.T) {
	// Only notnil/chess handles this family correctly.
	pos, err := mg.ParsePosition("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	nodes, err := Walk(pos, 2, Notnil{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if nodes != 191 {
		t.Fatalf("Walk nodes: got %d want 191", nodes)
	}
}

func TestTerminalStatusAgrees(t *testing.T) {
	for _, fen := range []string{
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"k7/1R6/1K6/8/8/8/8/8 b - - 0 1",
		"R6k/8/6K1/8/8/8/8/8 b - - 0 1",
	} {
		pos, err := mg.ParsePosition(fen)
		if err != nil {
			t.Fatalf("ParsePosition: %v", err)
		}
		if err := Compare(&pos, Notnil{}); err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
	}
}

func TestDragontoothPerft(t *testing.T) {
	var d Dragontooth
	if got := d.Perft(mg.FENStartPos, 3); got != 8902 {
		t.Fatalf("dragontoothmg perft(3): got %d want 8902", got)
	}
	pos := mg.StartPosition()
	if got := mg.Perft(&pos, 3); got != d.Perft(pos.FEN(), 3) {
		t.Fatalf("perft disagrees with dragontoothmg: %d", got)
	}
}

type fixedOracle []string

func (fixedOracle) Name() string { return "fixed" }
func (f fixedOracle) LegalMoves(string) ([]string, error) { return f, nil }

func TestCompareReportsMismatch(t *testing.T) {
	pos := mg.StartPosition()
	want := MoveStrings(&pos)
	wrong := append(slices.Clone(want[1:]), "e2e5")

	err := Compare(&pos, fixedOracle(wrong))
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Compare: want ErrMismatch, got %v", err)
	}
	var mm *Mismatch
	if !errors.As(err, &mm) {
		t.Fatalf("Compare: want *Mismatch, got %T", err)
	}
	if !slices.Equal(mm.Missing, []string{"e2e5"}) || !slices.Equal(mm.Extra, want[:1]) {
		t.Fatalf("mismatch detail: missing %v extra %v", mm.Missing, mm.Extra)
	}
	if err := Compare(&pos, fixedOracle(want)); err != nil {
		t.Fatalf("Compare with identical moves: %v", err)
	}
}

func TestDiff(t *testing.T) {
	missing, extra := diff([]string{"a", "c", "d"}, []string{"b", "c"})
	if !slices.Equal(missing, []string{"a", "d"}) || !slices.Equal(extra, []string{"b"}) {
		t.Fatalf("diff: missing %v extra %v", missing, extra)
	}
}
