package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	mg "chess-core/chessmg"
)

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
//
// dragontoothmg mishandles an en passant capture that uncovers a rank attack
// on the capturing king; callers walking such trees should use Notnil alone.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) LegalMoves(fen string) (moves []string, err error) {
	defer func() {
		// ParseFen panics on records it cannot read.
		if r := recover(); r != nil {
			err = fmt.Errorf("parse: %v", r)
		}
	}()
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		moves = append(moves, m.String())
	}
	return moves, nil
}

// Perft counts leaf nodes with dragontoothmg's own make/unmake.
func (Dragontooth) Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return dragontoothPerft(&b, depth)
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		if depth <= 0 {
			return 1
		}
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Notnil wraps github.com/notnil/chess and also checks terminal status.
type Notnil struct{}

func (Notnil) Name() string { return "notnil/chess" }

func notnilPosition(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt).Position(), nil
}

func (Notnil) LegalMoves(fen string) ([]string, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return nil, err
	}
	valid := pos.ValidMoves()
	moves := make([]string, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, chess.UCINotation{}.Encode(pos, m))
	}
	return moves, nil
}

func (Notnil) Terminal(fen string) (mg.Status, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return mg.InProgress, err
	}
	switch pos.Status() {
	case chess.Checkmate:
		return mg.Checkmate, nil
	case chess.Stalemate:
		return mg.Stalemate, nil
	}
	return mg.InProgress, nil
}

// Default returns both oracles.
func Default() []Oracle { return []Oracle{Dragontooth{}, Notnil{}} }
