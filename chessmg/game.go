package chessmg

import "strings"

// Status classifies the current position of a game.
type Status uint8

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	DrawClaimable
)

var statusNames = [...]string{"in progress", "check", "checkmate", "stalemate", "draw claimable"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// DrawReason is a bit set of the draws the side to move may claim.
// Draws are reported, never applied.
type DrawReason uint8

const (
	DrawFiftyMove DrawReason = 1 << iota
	DrawRepetition
)

func (d DrawReason) String() string {
	var parts []string
	if d&DrawFiftyMove != 0 {
		parts = append(parts, "fifty-move rule")
	}
	if d&DrawRepetition != 0 {
		parts = append(parts, "threefold repetition")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// Outcome is the full classification of a position.
type Outcome struct {
	Status     Status
	Checkmated Color // the mated side, meaningful only when Status == Checkmate
	Draws      DrawReason
}

// record holds what Undo needs: the move and a snapshot of the position before it.
type record struct {
	move     Move
	captured Piece
	prev     Position
}

// Game is the mutable root of a chess game: the current position plus the
// history of applied moves and position signatures.
//
// A Game must not be used from several goroutines at once. Search code that
// wants to explore in parallel should work on Clone()s or Position values.
type Game struct {
	pos     Position
	history []record
	keys    []uint64 // signature of every position reached; the current one is last
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game { return NewGameFromPosition(StartPosition()) }

// NewGameFromPosition starts a game with no history from pos.
func NewGameFromPosition(pos Position) *Game {
	return &Game{pos: pos, keys: []uint64{pos.Hash()}}
}

// LoadPosition parses a serialized position and starts a game from it.
func LoadPosition(text string) (*Game, error) {
	pos, err := ParsePosition(text)
	if err != nil {
		return nil, err
	}
	return NewGameFromPosition(pos), nil
}

// ApplyMove returns a copy of g with m played. g itself is never modified.
func ApplyMove(g *Game, m Move) (*Game, error) {
	next := g.Clone()
	if err := next.Apply(m); err != nil {
		return nil, err
	}
	return next, nil
}

// Clone returns an independent copy of the game, history included.
func (g *Game) Clone() *Game {
	c := &Game{pos: g.pos}
	c.history = append([]record(nil), g.history...)
	c.keys = append([]uint64(nil), g.keys...)
	return c
}

// Position returns a copy of the current position.
func (g *Game) Position() Position { return g.pos }

// SideToMove reports which side is to play.
func (g *Game) SideToMove() Color { return g.pos.side }

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []Move { return g.pos.LegalMoves() }

// PseudoLegalMoves returns the moves before check filtering.
func (g *Game) PseudoLegalMoves() []Move { return g.pos.PseudoLegalMoves() }

// InCheck reports whether color c's king is attacked.
func (g *Game) InCheck(c Color) bool { return g.pos.InCheck(c) }

// Apply plays m if it is a legal move. Otherwise it returns an
// *IllegalMoveError and leaves the game untouched.
func (g *Game) Apply(m Move) error {
	if !g.pos.IsLegal(m) {
		return &IllegalMoveError{Move: m, Position: g.pos.Encode()}
	}
	prev := g.pos
	captured := g.pos.play(m)
	g.history = append(g.history, record{move: m, captured: captured, prev: prev})
	g.keys = append(g.keys, g.pos.Hash())
	return nil
}

// Play resolves coordinate notation such as "e2e4" or "e7e8q" and applies it.
func (g *Game) Play(text string) (Move, error) {
	m, err := g.pos.ResolveMove(text)
	if err != nil {
		return NullMove, err
	}
	return m, g.Apply(m)
}

// Undo reverts the last applied move by restoring the saved snapshot.
func (g *Game) Undo() error {
	n := len(g.history)
	if n == 0 {
		return ErrNoHistory
	}
	g.pos = g.history[n-1].prev
	g.history = g.history[:n-1]
	g.keys = g.keys[:len(g.keys)-1]
	return nil
}

// History returns the moves applied so far, oldest first.
func (g *Game) History() []Move {
	moves := make([]Move, len(g.history))
	for i, r := range g.history {
		moves[i] = r.move
	}
	return moves
}

// LastMove returns the most recent move and the piece it captured.
func (g *Game) LastMove() (m Move, captured Piece, ok bool) {
	if len(g.history) == 0 {
		return NullMove, NoPiece, false
	}
	r := g.history[len(g.history)-1]
	return r.move, r.captured, true
}

// RepetitionCount returns how many times the current position has occurred,
// the current occurrence included. Only positions since the last capture or
// pawn move are scanned; earlier ones cannot recur.
func (g *Game) RepetitionCount() int {
	last := len(g.keys) - 1
	cur := g.keys[last]
	lo := last - g.pos.halfmove
	if lo < 0 {
		lo = 0
	}
	count := 0
	for i := last; i >= lo; i-- {
		if g.keys[i] == cur {
			count++
		}
	}
	return count
}

// Draws reports which draws the side to move may claim.
func (g *Game) Draws() DrawReason {
	var d DrawReason
	if g.pos.IsDrawBy50() {
		d |= DrawFiftyMove
	}
	if g.RepetitionCount() >= 3 {
		d |= DrawRepetition
	}
	return d
}

// CanClaimDraw reports whether any draw may be claimed.
func (g *Game) CanClaimDraw() bool { return g.Draws() != 0 }

// Status classifies the position. Checkmate and stalemate take precedence
// over a claimable draw, which takes precedence over a plain check.
func (g *Game) Status() Status { return g.Outcome().Status }

// Outcome classifies the position and lists claimable draws.
func (g *Game) Outcome() Outcome {
	out := Outcome{Draws: g.Draws()}
	inCheck := g.pos.InCheck(g.pos.side)
	hasMoves := g.pos.HasLegalMoves()
	switch {
	case !hasMoves && inCheck:
		out.Status = Checkmate
		out.Checkmated = g.pos.side
	case !hasMoves:
		out.Status = Stalemate
	case out.Draws != 0:
		out.Status = DrawClaimable
	case inCheck:
		out.Status = Check
	default:
		out.Status = InProgress
	}
	return out
}

// String returns the serialized record of the current position.
func (g *Game) String() string { return g.pos.Encode() }
