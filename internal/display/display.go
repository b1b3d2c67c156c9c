// Package display renders positions as text for the shell.
package display

import (
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
)

// Options controls rendering.
type Options struct {
	Color     bool        // ANSI colors; off for pipes and tests
	Flip      bool        // draw from Black's side
	Highlight []mg.Square // e.g. the last move's from and to squares
}

type palette struct {
	white, black, light, dark, mark, check *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgHiRed, color.Bold),
		light: color.New(color.FgWhite),
		dark:  color.New(color.FgHiBlack),
		mark:  color.New(color.BgBlue),
		check: color.New(color.BgRed),
	}
	for _, c := range []*color.Color{p.white, p.black, p.light, p.dark, p.mark, p.check} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Board draws the position as an 8x8 grid with rank and file labels,
// followed by a line naming the side to move.
func Board(pos *mg.Position, opts Options) string {
	pal := newPalette(opts.Color)
	checked := mg.NoSquare
	if pos.InCheck(pos.SideToMove()) {
		b := pos.Board()
		checked = b.KingSquare(pos.SideToMove())
	}

	ranks := []int{7, 6, 5, 4, 3, 2, 1, 0}
	files := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if opts.Flip {
		ranks, files = files, ranks
	}

	var sb strings.Builder
	for _, r := range ranks {
		sb.WriteByte('1' + byte(r))
		sb.WriteByte(' ')
		for _, f := range files {
			sq := mg.NewSquare(r, f)
			cell := pieceCell(pal, pos.PieceAt(sq), (r+f)%2 == 1)
			switch {
			case sq == checked:
				cell = pal.check.Sprint(cell)
			case slices.Contains(opts.Highlight, sq):
				cell = pal.mark.Sprint(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for _, f := range files {
		sb.WriteByte(' ')
		sb.WriteByte('a' + byte(f))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	sb.WriteString(pos.SideToMove().String())
	sb.WriteString(" to move\n")
	return sb.String()
}

func pieceCell(pal palette, pc mg.Piece, light bool) string {
	if pc == mg.NoPiece {
		if light {
			return pal.light.Sprint(" . ")
		}
		return pal.dark.Sprint(" . ")
	}
	text := " " + pc.String() + " "
	if pc.Color() == mg.White {
		return pal.white.Sprint(text)
	}
	return pal.black.Sprint(text)
}

// Moves formats a move list in sorted coordinate notation.
func Moves(moves []mg.Move) string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return strings.Join(out, " ")
}
