package bench

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	mg "chess-core/chessmg"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func parse(b *testing.B, fen string) mg.Position {
	pos, err := mg.ParsePosition(fen)
	if err != nil {
		b.Fatalf("ParsePosition: %v", err)
	}
	return pos
}

func benchLegalMoves(b *testing.B, fen string) {
	pos := parse(b, fen)
	buf := make([]mg.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.LegalMovesInto(buf)
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, mg.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, kiwipete)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	benchLegalMoves(b, pos6)
}

func BenchmarkPseudoLegalMoves_Kiwipete(b *testing.B) {
	pos := parse(b, kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.PseudoLegalMoves()
	}
}

func BenchmarkLegalCaptures_EP(b *testing.B) {
	pos := parse(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalCaptures()
	}
}

func BenchmarkLegalQuiets_Initial(b *testing.B) {
	pos := parse(b, mg.FENStartPos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalQuiets()
	}
}

func BenchmarkGameApplyUndo_Initial(b *testing.B) {
	g := mg.NewGame()
	moves := g.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if err := g.Apply(m); err != nil {
				b.Fatalf("Apply(%v): %v", m, err)
			}
			if err := g.Undo(); err != nil {
				b.Fatalf("Undo: %v", err)
			}
		}
	}
}

// Reference point for the generator above.
func BenchmarkDragontoothLegalMoves_Kiwipete(b *testing.B) {
	board := dragontoothmg.ParseFen(kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.GenerateLegalMoves()
	}
}
