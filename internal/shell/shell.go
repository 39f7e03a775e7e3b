// Package shell implements the line-oriented front-end of the chesscore
// CLI. It drives the rules core only through its public surface: FEN
// parsing, move strings and the legal move generator.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/config"
	mylogging "github.com/hailam/chesscore/internal/logging"
)

// Shell reads commands from a reader and writes responses to a writer.
//
// Commands:
//   - position startpos [moves m1 m2 ...]
//   - position fen <fen> [moves m1 m2 ...]
//   - move <m>            apply a single move to the current position
//   - moves               list the legal moves in generator order
//   - perft [depth]       leaf node count
//   - divide [depth]      perft split by root move
//   - fen                 print the current position as FEN
//   - d                   print the board
//   - status              ongoing / check / checkmate / stalemate
//   - quit
type Shell struct {
	cfg *config.Config
	pos *board.Position
	out io.Writer
	log *logging.Logger
	num *message.Printer
}

// New creates a shell over the starting position.
func New(cfg *config.Config, out io.Writer) *Shell {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		panic(err)
	}
	return &Shell{
		cfg: cfg,
		pos: pos,
		out: out,
		log: mylogging.GetLog(),
		num: message.NewPrinter(language.English),
	}
}

// Run processes commands until EOF or "quit".
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "position":
			s.handlePosition(args)
		case "move":
			if len(args) != 1 {
				s.log.Error("move takes exactly one move string")
				continue
			}
			s.applyMove(args[0])
		case "moves":
			s.handleMoves()
		case "perft":
			s.handlePerft(args, false)
		case "divide":
			s.handlePerft(args, true)
		case "fen":
			fmt.Fprintln(s.out, s.pos.ToFEN())
		case "d":
			fmt.Fprintln(s.out, s.pos.String())
		case "status":
			s.handleStatus()
		case "quit", "exit":
			return nil
		default:
			s.log.Errorf("unknown command %q", cmd)
		}
	}
	return scanner.Err()
}

// handlePosition parses "startpos" or "fen <fen>", optionally followed by
// "moves m1 m2 ..." applied in order.
func (s *Shell) handlePosition(args []string) {
	if len(args) == 0 {
		s.log.Error("position requires startpos or fen")
		return
	}
	var fen string
	var moves []string
	switch args[0] {
	case "startpos":
		fen = board.StartFEN
		moves = args[1:]
	case "fen":
		rest := args[1:]
		i := 0
		for i < len(rest) && rest[i] != "moves" {
			i++
		}
		fen = strings.Join(rest[:i], " ")
		moves = rest[i:]
	default:
		s.log.Errorf("unknown position form %q", args[0])
		return
	}
	if len(moves) > 0 && moves[0] == "moves" {
		moves = moves[1:]
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		s.log.Errorf("position: %v", err)
		return
	}
	s.pos = pos
	for _, mv := range moves {
		if !s.applyMove(mv) {
			return
		}
	}
}

// applyMove applies one move string to the current position, rejecting
// anything the generator would not produce.
func (s *Shell) applyMove(str string) bool {
	m := board.MoveFromString(str, s.pos)
	if m == board.MoveEnd {
		s.log.Errorf("illegal move %q", str)
		return false
	}
	s.pos.Make(m)
	return true
}

func (s *Shell) handleMoves() {
	g := board.NewGenerator(s.pos)
	n := 0
	for m := g.NextMove(); m != board.MoveEnd; m = g.NextMove() {
		if n > 0 {
			fmt.Fprint(s.out, " ")
		}
		fmt.Fprint(s.out, m)
		n++
	}
	fmt.Fprintf(s.out, "\n%d legal moves\n", n)
}

func (s *Shell) handlePerft(args []string, divide bool) {
	depth := s.cfg.Perft.DefaultDepth
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			s.log.Errorf("bad perft depth %q", args[0])
			return
		}
		depth = n
	}

	start := time.Now()
	var total int64
	if divide {
		for _, e := range board.Divide(s.pos, depth) {
			s.num.Fprintf(s.out, "%v: %d\n", e.Move, e.Nodes)
			total += e.Nodes
		}
	} else {
		total = board.Perft(s.pos, depth)
	}
	elapsed := time.Since(start)
	s.num.Fprintf(s.out, "perft %d: %d nodes in %v\n", depth, total, elapsed.Round(time.Millisecond))
}

func (s *Shell) handleStatus() {
	switch {
	case s.pos.IsCheckmate():
		fmt.Fprintln(s.out, "checkmate")
	case s.pos.IsStalemate():
		fmt.Fprintln(s.out, "stalemate")
	case s.pos.InCheck(s.pos.SideToMove()):
		fmt.Fprintln(s.out, "check")
	default:
		fmt.Fprintln(s.out, "ongoing")
	}
}
