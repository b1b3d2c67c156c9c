package chessmg_test

import (
	"errors"
	"testing"

	mg "chess-core/chessmg"
)

func TestBoardPlaceRemove(t *testing.T) {
	var b mg.Board
	if !b.IsEmpty(mg.E4) {
		t.Fatalf("zero board should be empty")
	}
	b.Place(mg.E4, mg.WhiteQueen)
	if got := b.PieceAt(mg.E4); got != mg.WhiteQueen {
		t.Fatalf("PieceAt(e4): got %v want Q", got)
	}
	if b.IsEmpty(mg.E4) {
		t.Fatalf("e4 should be occupied")
	}
	// Place replaces whatever is on the square.
	b.Place(mg.E4, mg.BlackKnight)
	if got := b.PieceAt(mg.E4); got != mg.BlackKnight {
		t.Fatalf("PieceAt(e4) after replace: got %v want n", got)
	}
	if b.Occupancy(mg.White) != 0 {
		t.Fatalf("white occupancy should be empty after replacement")
	}
	if !b.Validate() {
		t.Fatalf("board inconsistent after Place")
	}
	if got := b.Remove(mg.E4); got != mg.BlackKnight {
		t.Fatalf("Remove(e4): got %v want n", got)
	}
	if got := b.Remove(mg.E4); got != mg.NoPiece {
		t.Fatalf("Remove on empty square: got %v", got)
	}
	if b != (mg.Board{}) {
		t.Fatalf("board should equal the zero board after removing its only piece")
	}
}

func TestBoardKingSquareAndCount(t *testing.T) {
	pos := mg.StartPosition()
	b := pos.Board()
	if got := b.KingSquare(mg.White); got != mg.E1 {
		t.Fatalf("white king: got %v want e1", got)
	}
	if got := b.KingSquare(mg.Black); got != mg.E8 {
		t.Fatalf("black king: got %v want e8", got)
	}
	if got := b.Count(mg.Black, mg.Pawn); got != 8 {
		t.Fatalf("black pawns: got %d want 8", got)
	}
	var empty mg.Board
	if got := empty.KingSquare(mg.White); got != mg.NoSquare {
		t.Fatalf("empty board king: got %v want NoSquare", got)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	pos := mg.StartPosition()
	a := pos.Board()
	b := a
	b.Remove(mg.E2)
	if a.IsEmpty(mg.E2) {
		t.Fatalf("mutating a copy changed the original")
	}
	if pos.PieceAt(mg.E2) != mg.WhitePawn {
		t.Fatalf("Board() must return a copy")
	}
}

func expectOutOfRange(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s: expected panic with error, got %v", name, r)
		}
		var oor *mg.OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("%s: expected *OutOfRangeError, got %T", name, err)
		}
	}()
	fn()
}

func TestBoardOutOfRange(t *testing.T) {
	var b mg.Board
	expectOutOfRange(t, "PieceAt", func() { b.PieceAt(64) })
	expectOutOfRange(t, "Place", func() { b.Place(-1, mg.WhitePawn) })
	expectOutOfRange(t, "Remove", func() { b.Remove(100) })
	expectOutOfRange(t, "IsEmpty", func() { b.IsEmpty(mg.NoSquare) })
	expectOutOfRange(t, "NewSquare", func() { mg.NewSquare(8, 0) })
	expectOutOfRange(t, "NewSquare file", func() { mg.NewSquare(0, -1) })
}

func TestSquareNames(t *testing.T) {
	sq := mg.NewSquare(3, 4)
	if sq != mg.E4 || sq.String() != "e4" || sq.Rank() != 3 || sq.File() != 4 {
		t.Fatalf("NewSquare(3,4): got %v (rank %d file %d)", sq, sq.Rank(), sq.File())
	}
	parsed, err := mg.ParseSquare("h8")
	if err != nil || parsed != mg.H8 {
		t.Fatalf("ParseSquare(h8): got %v, %v", parsed, err)
	}
	for _, bad := range []string{"", "i1", "a9", "a", "e44"} {
		if _, err := mg.ParseSquare(bad); err == nil {
			t.Fatalf("ParseSquare(%q) should fail", bad)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	p := mg.NewPiece(mg.Black, mg.Queen)
	if p != mg.BlackQueen || p.Kind() != mg.Queen || p.Color() != mg.Black || p.String() != "q" {
		t.Fatalf("NewPiece(black, queen): got %v kind=%v color=%v", p, p.Kind(), p.Color())
	}
	if mg.NewPiece(mg.White, mg.NoKind) != mg.NoPiece {
		t.Fatalf("NoKind should produce NoPiece")
	}
	if mg.WhiteKnight.String() != "N" {
		t.Fatalf("white knight letter: got %q", mg.WhiteKnight.String())
	}
}
