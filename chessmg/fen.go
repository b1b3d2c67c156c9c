package chessmg

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Field names used in ParseError.
const (
	fieldRecord    = "record"
	fieldPlacement = "placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

// ParsePosition parses a serialized position. Both the dotted record written
// by Encode and standard FEN written by FEN are accepted: empty squares may be
// spelled '.' or as digit runs, and castling as "KQkq", "K-k-" or "-".
// All six fields are required.
func ParsePosition(text string) (Position, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 {
		return Position{}, &ParseError{Field: fieldRecord, Input: text, Reason: "want 6 space-separated fields, got " + strconv.Itoa(len(fields))}
	}

	var p Position
	if err := parsePlacement(&p.board, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return Position{}, &ParseError{Field: fieldSide, Input: fields[1], Reason: "must be 'w' or 'b'"}
	}

	cr, err := parseCastling(fields[2])
	if err != nil {
		return Position{}, err
	}
	p.castling = cr

	p.ep = NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, &ParseError{Field: fieldEnPassant, Input: fields[3], Reason: err.Error()}
		}
		p.ep = sq
	}

	p.halfmove, err = strconv.Atoi(fields[4])
	if err != nil || p.halfmove < 0 {
		return Position{}, &ParseError{Field: fieldHalfmove, Input: fields[4], Reason: "must be a non-negative integer"}
	}
	p.fullmove, err = strconv.Atoi(fields[5])
	if err != nil || p.fullmove < 1 {
		return Position{}, &ParseError{Field: fieldFullmove, Input: fields[5], Reason: "must be a positive integer"}
	}

	if err := p.validate(); err != nil {
		return Position{}, err
	}
	return p, nil
}

func parsePlacement(b *Board, s string) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return &ParseError{Field: fieldPlacement, Input: s, Reason: "want 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i // first rank string is rank 8
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			switch {
			case ch == '.':
				file++
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				piece := pieceFromLetter(ch)
				if piece == NoPiece {
					return &ParseError{Field: fieldPlacement, Input: rankStr, Reason: "unrecognized piece letter " + strconv.QuoteRune(rune(ch))}
				}
				if file >= 8 {
					return &ParseError{Field: fieldPlacement, Input: rankStr, Reason: "too many squares in rank"}
				}
				b.add(Square(rank*8+file), piece)
				file++
			}
		}
		if file != 8 {
			return &ParseError{Field: fieldPlacement, Input: rankStr, Reason: "rank does not have 8 files"}
		}
	}
	return nil
}

func parseCastling(s string) (CastlingRights, error) {
	const flags = "KQkq"
	if s == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	if len(s) == 4 && strings.ContainsRune(s, '-') {
		// positional mask: each slot is its flag letter or '-'
		for i := 0; i < 4; i++ {
			switch s[i] {
			case flags[i]:
				cr |= 1 << uint(i)
			case '-':
			default:
				return 0, &ParseError{Field: fieldCastling, Input: s, Reason: "invalid castling mask"}
			}
		}
		return cr, nil
	}
	last := -1
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(flags, s[i])
		if idx < 0 {
			return 0, &ParseError{Field: fieldCastling, Input: s, Reason: "invalid castling rights character"}
		}
		if idx <= last {
			return 0, &ParseError{Field: fieldCastling, Input: s, Reason: "castling flags repeated or out of order"}
		}
		last = idx
		cr |= 1 << uint(idx)
	}
	return cr, nil
}

// validate enforces the invariants the generator relies on.
func (p *Position) validate() error {
	for _, c := range [2]Color{White, Black} {
		if n := p.board.Count(c, King); n != 1 {
			return &ParseError{Field: fieldPlacement, Input: p.placement(false), Reason: c.String() + " must have exactly one king, has " + strconv.Itoa(n)}
		}
	}
	const backRanks = uint64(0xFF) | uint64(0xFF)<<56
	if (p.board.kinds[White][Pawn]|p.board.kinds[Black][Pawn])&backRanks != 0 {
		return &ParseError{Field: fieldPlacement, Input: p.placement(false), Reason: "pawn on first or last rank"}
	}
	for c := range castles {
		for _, cs := range castles[c] {
			if !p.castling.Has(cs.right) {
				continue
			}
			if p.board.pieces[cs.kingFrom] != NewPiece(Color(c), King) || p.board.pieces[cs.rookFrom] != NewPiece(Color(c), Rook) {
				return &ParseError{Field: fieldCastling, Input: p.castling.String(), Reason: "king or rook not on its home square"}
			}
		}
	}
	if p.ep != NoSquare {
		// White to move: Black just pushed, so the target is on rank 6 with the pawn on rank 5.
		targetRank, pawnSq, originSq := 5, p.ep-8, p.ep+8
		if p.side == Black {
			targetRank, pawnSq, originSq = 2, p.ep+8, p.ep-8
		}
		them := p.side.Other()
		if p.ep.Rank() != targetRank {
			return &ParseError{Field: fieldEnPassant, Input: p.ep.String(), Reason: "target not on the en passant rank for the side to move"}
		}
		if p.board.pieces[pawnSq] != NewPiece(them, Pawn) || p.board.pieces[p.ep] != NoPiece || p.board.pieces[originSq] != NoPiece {
			return &ParseError{Field: fieldEnPassant, Input: p.ep.String(), Reason: "no double-pushed pawn behind the target"}
		}
	}
	if p.board.inCheck(p.side.Other()) {
		return &ParseError{Field: fieldSide, Input: p.side.String(), Reason: "side not to move is in check"}
	}
	return nil
}

// placement writes the piece placement field. Digit runs compress empty
// squares when compact is set; otherwise every empty square is a '.'.
func (p *Position) placement(compact bool) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board.pieces[rank*8+file]
			switch {
			case pc != NoPiece:
				if empty > 0 {
					sb.WriteByte('0' + byte(empty))
					empty = 0
				}
				sb.WriteString(pc.String())
			case compact:
				empty++
			default:
				sb.WriteByte('.')
			}
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (p *Position) trailer(castling string) string {
	side := "w"
	if p.side == Black {
		side = "b"
	}
	return strings.Join([]string{
		side,
		castling,
		p.ep.String(),
		strconv.Itoa(p.halfmove),
		strconv.Itoa(p.fullmove),
	}, " ")
}

// Encode produces the single-line record: eight dotted rank strings from
// rank 8 to rank 1, side to move, the four-character castling mask, en
// passant target, halfmove clock and fullmove number.
func (p *Position) Encode() string {
	return p.placement(false) + " " + p.trailer(p.castling.String())
}

// FEN produces standard Forsyth-Edwards Notation for third-party tools.
func (p *Position) FEN() string {
	castling := strings.ReplaceAll(p.castling.String(), "-", "")
	if castling == "" {
		castling = "-"
	}
	return p.placement(true) + " " + p.trailer(castling)
}
