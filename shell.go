package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
	"chess-core/internal/crosscheck"
	"chess-core/internal/display"
)

const helpText = `commands:
  new                         start a new game
  position startpos|fen <record> [moves m1 m2 ...]
  moves                       list legal moves
  move <m> | <m>              play a move in coordinate notation (e2e4, e7e8q)
  undo                        take back the last move
  fen | encode                print the position as FEN or as the dotted record
  status                      print status, check and claimable draws
  board | d                   draw the board
  history                     list moves played
  perft <depth>               count leaf nodes
  divide <depth>              per-move leaf counts
  verify <depth>              compare every node with dragontoothmg and notnil/chess
  quit`

type shell struct {
	game   *mg.Game
	out    io.Writer
	color  bool
	prompt bool
}

func newShell(g *mg.Game, out io.Writer) *shell {
	return &shell{game: g, out: out}
}

// run reads commands until EOF or quit.
func (s *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	s.showPrompt()
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			s.showPrompt()
			continue
		}
		if s.exec(tokens) {
			return nil
		}
		s.showPrompt()
	}
	return scanner.Err()
}

func (s *shell) showPrompt() {
	if s.prompt {
		fmt.Fprintf(s.out, "%s> ", s.game.SideToMove())
	}
}

func (s *shell) println(a ...interface{}) { fmt.Fprintln(s.out, a...) }

// exec runs one command and reports whether the shell should exit.
func (s *shell) exec(tokens []string) bool {
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		s.println(helpText)
	case "uci":
		s.println("id name chess-core")
		s.println("uciok")
	case "isready":
		s.println("readyok")
	case "new", "ucinewgame":
		s.game = mg.NewGame()
	case "position":
		s.position(args)
	case "moves":
		s.println(display.Moves(s.game.LegalMoves()))
	case "move":
		if len(args) != 1 {
			s.println("usage: move <e2e4>")
			break
		}
		s.play(args[0])
	case "undo":
		if err := s.game.Undo(); err != nil {
			s.println("error:", err)
		}
	case "fen":
		pos := s.game.Position()
		s.println(pos.FEN())
	case "encode", "record":
		s.println(s.game.String())
	case "status":
		s.status()
	case "board", "d":
		s.board()
	case "history":
		s.history()
	case "perft", "divide", "verify":
		depth, err := depthArg(args)
		if err != nil {
			s.println("error:", err)
			break
		}
		s.perft(cmd, depth)
	default:
		if _, err := mg.ParseMove(cmd); err == nil {
			s.play(cmd)
			break
		}
		s.println("unknown command:", cmd, "(try help)")
	}
	return false
}

func depthArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("want a single depth argument")
	}
	d, err := strconv.Atoi(args[0])
	if err != nil || d < 1 {
		return 0, fmt.Errorf("bad depth %q", args[0])
	}
	return d, nil
}

// position handles "position startpos|fen <record> [moves ...]".
func (s *shell) position(args []string) {
	if len(args) == 0 {
		s.println("error: malformed position command")
		return
	}
	var rest []string
	var g *mg.Game
	switch strings.ToLower(args[0]) {
	case "startpos":
		g = mg.NewGame()
		rest = args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		loaded, err := mg.LoadPosition(strings.Join(args[1:i], " "))
		if err != nil {
			s.println("error:", err)
			return
		}
		g, rest = loaded, args[i:]
	default:
		s.println("error: invalid position subcommand", args[0])
		return
	}
	if len(rest) > 0 {
		if strings.ToLower(rest[0]) != "moves" {
			s.println("error: expected moves, got", rest[0])
			return
		}
		for _, mv := range rest[1:] {
			if _, err := g.Play(mv); err != nil {
				s.println("error:", err)
				return
			}
		}
	}
	s.game = g
	log.Printf("position %s", g)
}

func (s *shell) play(text string) {
	m, err := s.game.Play(text)
	if err != nil {
		s.println("error:", err)
		return
	}
	log.Printf("played %v", m)
	if st := s.game.Status(); st != mg.InProgress {
		s.println(st)
	}
}

func (s *shell) status() {
	out := s.game.Outcome()
	switch out.Status {
	case mg.Checkmate:
		s.println("checkmate,", out.Checkmated, "is mated")
	default:
		s.println(out.Status)
	}
	if s.game.InCheck(s.game.SideToMove()) && out.Status != mg.Checkmate {
		s.println("in check")
	}
	if out.Draws != 0 {
		s.println("claimable draw:", out.Draws)
	}
	s.println("repetitions:", s.game.RepetitionCount())
}

func (s *shell) board() {
	pos := s.game.Position()
	var hl []mg.Square
	if m, _, ok := s.game.LastMove(); ok {
		hl = []mg.Square{m.From(), m.To()}
	}
	fmt.Fprint(s.out, display.Board(&pos, display.Options{Color: s.color, Highlight: hl}))
}

func (s *shell) history() {
	moves := s.game.History()
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	s.println(strings.Join(parts, " "))
}

func (s *shell) perft(cmd string, depth int) {
	pos := s.game.Position()
	start := time.Now()
	switch cmd {
	case "perft":
		nodes := mg.Perft(&pos, depth)
		s.println(nodes)
		log.Printf("perft %d: %d nodes in %s", depth, nodes, time.Since(start))
	case "divide":
		div := mg.PerftDivide(&pos, depth)
		lines := make([]string, 0, len(div))
		var total uint64
		for _, m := range maps.Keys(div) {
			lines = append(lines, fmt.Sprintf("%s: %d", m, div[m]))
			total += div[m]
		}
		slices.Sort(lines)
		for _, l := range lines {
			s.println(l)
		}
		fmt.Fprintf(s.out, "Total: %d\n", total)
	case "verify":
		nodes, err := crosscheck.Walk(pos, depth, crosscheck.Default()...)
		if err != nil {
			s.println("mismatch:", err)
			return
		}
		s.println("ok", nodes)
	}
}
