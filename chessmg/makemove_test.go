package chessmg_test

import (
	"testing"

	mg "chess-core/chessmg"
)

func TestCastleMovesRook(t *testing.T) {
	cases := []struct {
		mv           string
		fen          string
		king, rook   mg.Square
		rookFrom     mg.Square
		wantCastling string
	}{
		{"e1g1", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mg.G1, mg.F1, mg.H1, "--kq"},
		{"e1c1", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mg.C1, mg.D1, mg.A1, "--kq"},
		{"e8g8", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mg.G8, mg.F8, mg.H8, "KQ--"},
		{"e8c8", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mg.C8, mg.D8, mg.A8, "KQ--"},
	}
	for _, tc := range cases {
		g, err := mg.LoadPosition(tc.fen)
		if err != nil {
			t.Fatalf("LoadPosition: %v", err)
		}
		m, err := g.Play(tc.mv)
		if err != nil {
			t.Fatalf("Play(%s): %v", tc.mv, err)
		}
		if !m.IsCastle() {
			t.Fatalf("%s should resolve to a castling move, got flag %v", tc.mv, m.Flag())
		}
		pos := g.Position()
		if pos.PieceAt(tc.king).Kind() != mg.King || pos.PieceAt(tc.rook).Kind() != mg.Rook {
			t.Fatalf("%s: king/rook not relocated: %s", tc.mv, pos.Encode())
		}
		if pos.PieceAt(tc.rookFrom) != mg.NoPiece {
			t.Fatalf("%s: rook still on %v", tc.mv, tc.rookFrom)
		}
		if got := pos.Castling().String(); got != tc.wantCastling {
			t.Fatalf("%s: castling %q want %q", tc.mv, got, tc.wantCastling)
		}
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	g, err := mg.LoadPosition("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	playAll(t, g, "e5d6")
	pos := g.Position()
	if pos.PieceAt(mg.D6) != mg.WhitePawn || pos.PieceAt(mg.D5) != mg.NoPiece || pos.PieceAt(mg.E5) != mg.NoPiece {
		t.Fatalf("en passant capture: %s", pos.Encode())
	}
	if _, captured, _ := g.LastMove(); captured != mg.BlackPawn {
		t.Fatalf("captured piece: got %v want p", captured)
	}
	if pos.EnPassant() != mg.NoSquare {
		t.Fatalf("en passant target should be cleared")
	}
}

func TestPromotionReplacesPawn(t *testing.T) {
	g, err := mg.LoadPosition("4k3/8/8/8/8/8/p7/4K3 b - - 3 40")
	if err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	playAll(t, g, "a2a1n")
	pos := g.Position()
	if pos.PieceAt(mg.A1) != mg.BlackKnight || pos.PieceAt(mg.A2) != mg.NoPiece {
		t.Fatalf("underpromotion: %s", pos.Encode())
	}
	if pos.HalfmoveClock() != 0 || pos.FullmoveNumber() != 41 {
		t.Fatalf("counters after black pawn move: %d %d", pos.HalfmoveClock(), pos.FullmoveNumber())
	}
}

func TestCounters(t *testing.T) {
	g := mg.NewGame()
	steps := []struct {
		mv       string
		halfmove int
		fullmove int
	}{
		{"g1f3", 1, 1},
		{"g8f6", 2, 2},
		{"e2e4", 0, 2},
		{"f6e4", 0, 3},
		{"b1c3", 1, 3},
	}
	for _, s := range steps {
		playAll(t, g, s.mv)
		pos := g.Position()
		if pos.HalfmoveClock() != s.halfmove || pos.FullmoveNumber() != s.fullmove {
			t.Fatalf("after %s: clocks %d/%d want %d/%d", s.mv,
				pos.HalfmoveClock(), pos.FullmoveNumber(), s.halfmove, s.fullmove)
		}
	}
}

func TestRookCaptureClearsRights(t *testing.T) {
	g, err := mg.LoadPosition("r3k2r/8/8/8/8/8/6b1/R3K2R b KQkq - 0 1")
	if err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	playAll(t, g, "g2h1")
	pos := g.Position()
	if got := pos.Castling().String(); got != "-Qkq" {
		t.Fatalf("castling after Bxh1: got %q want -Qkq", got)
	}
}
