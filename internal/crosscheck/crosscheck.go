// Package crosscheck compares chessmg against independent rules engines.
//
// Every oracle receives the position as standard FEN and answers with its
// legal moves in coordinate notation; any disagreement is reported as a
// *Mismatch naming the moves only one side produced.
package crosscheck

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
)

// ErrMismatch is wrapped by every *Mismatch.
var ErrMismatch = errors.New("crosscheck: move generators disagree")

// Oracle is an independent move generator.
type Oracle interface {
	Name() string
	LegalMoves(fen string) ([]string, error)
}

// StatusOracle is an Oracle that can also classify terminal positions.
type StatusOracle interface {
	Oracle
	// Terminal returns mg.Checkmate, mg.Stalemate or mg.InProgress.
	Terminal(fen string) (mg.Status, error)
}

// Mismatch describes one disagreement between chessmg and an oracle.
type Mismatch struct {
	Oracle  string
	FEN     string
	Missing []string // produced by the oracle only
	Extra   []string // produced by chessmg only
	Status  string   // non-empty when terminal classification differs
}

func (m *Mismatch) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s disagrees on %q", m.Oracle, m.FEN)
	if len(m.Missing) > 0 {
		fmt.Fprintf(&sb, "; missing %s", strings.Join(m.Missing, " "))
	}
	if len(m.Extra) > 0 {
		fmt.Fprintf(&sb, "; extra %s", strings.Join(m.Extra, " "))
	}
	if m.Status != "" {
		fmt.Fprintf(&sb, "; status %s", m.Status)
	}
	return sb.String()
}

func (m *Mismatch) Unwrap() error { return ErrMismatch }

// MoveStrings returns the legal moves of pos in sorted coordinate notation.
func MoveStrings(pos *mg.Position) []string {
	moves := pos.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// diff returns the elements of want missing from got and the elements of
// got absent from want. Both inputs must be sorted.
func diff(want, got []string) (missing, extra []string) {
	i, j := 0, 0
	for i < len(want) || j < len(got) {
		switch {
		case j == len(got) || (i < len(want) && want[i] < got[j]):
			missing = append(missing, want[i])
			i++
		case i == len(want) || got[j] < want[i]:
			extra = append(extra, got[j])
			j++
		default:
			i++
			j++
		}
	}
	return missing, extra
}

// Compare checks pos against every oracle and returns the first mismatch.
func Compare(pos *mg.Position, oracles ...Oracle) error {
	fen := pos.FEN()
	ours := MoveStrings(pos)
	for _, o := range oracles {
		theirs, err := o.LegalMoves(fen)
		if err != nil {
			return fmt.Errorf("%s on %q: %w", o.Name(), fen, err)
		}
		theirs = slices.Clone(theirs)
		slices.Sort(theirs)
		missing, extra := diff(theirs, ours)

		var status string
		if so, ok := o.(StatusOracle); ok {
			want, err := so.Terminal(fen)
			if err != nil {
				return fmt.Errorf("%s on %q: %w", o.Name(), fen, err)
			}
			if got := terminal(pos); got != want {
				status = fmt.Sprintf("got %v want %v", got, want)
			}
		}
		if len(missing) > 0 || len(extra) > 0 || status != "" {
			return &Mismatch{Oracle: o.Name(), FEN: fen, Missing: missing, Extra: extra, Status: status}
		}
	}
	return nil
}

func terminal(pos *mg.Position) mg.Status {
	switch {
	case pos.InCheckmate():
		return mg.Checkmate
	case pos.InStalemate():
		return mg.Stalemate
	}
	return mg.InProgress
}

// Walk compares every node of the move tree below pos down to depth plies
// and returns the number of leaf nodes visited.
func Walk(pos mg.Position, depth int, oracles ...Oracle) (uint64, error) {
	if err := Compare(&pos, oracles...); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var nodes uint64
	for _, m := range pos.LegalMoves() {
		next := pos
		next.Play(m)
		n, err := Walk(next, depth-1, oracles...)
		if err != nil {
			return nodes, fmt.Errorf("after %v: %w", m, err)
		}
		nodes += n
	}
	return nodes, nil
}

// Game replays coordinate moves from a start record and compares every
// position along the way, the start included.
func Game(start string, moves []string, oracles ...Oracle) error {
	g, err := mg.LoadPosition(start)
	if err != nil {
		return err
	}
	for i := 0; ; i++ {
		pos := g.Position()
		if err := Compare(&pos, oracles...); err != nil {
			return fmt.Errorf("ply %d: %w", i, err)
		}
		if i == len(moves) {
			return nil
		}
		if _, err := g.Play(moves[i]); err != nil {
			return fmt.Errorf("ply %d: %w", i+1, err)
		}
	}
}
