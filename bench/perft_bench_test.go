package bench

import (
	"testing"

	"chess-core/internal/crosscheck"

	mg "chess-core/chessmg"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos := parse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mg.Perft(&pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, mg.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

func BenchmarkDragontoothPerft_Kiwipete_D3(b *testing.B) {
	var d crosscheck.Dragontooth
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Perft(kiwipete, 3)
	}
}
