// Command chesscore is a small front-end over the rules core: an
// interactive shell for position setup, legal move listing and perft runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/logging"
	"github.com/hailam/chesscore/internal/shell"
)

var (
	configPath = flag.String("config", "", "path to a TOML config file")
	fenFlag    = flag.String("fen", board.StartFEN, "position for -perft runs")
	perftDepth = flag.Int("perft", 0, "run a perft to this depth and exit")
	cpuProfile = flag.Bool("profile", false, "write a CPU profile during -perft")
)

func main() {
	flag.Parse()
	log := logging.GetLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	logging.SetLevel(cfg.Log.Level)

	if *perftDepth > 0 {
		if err := runPerft(*fenFlag, *perftDepth, *cpuProfile); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	sh := shell.New(cfg, os.Stdout)
	if err := sh.Run(os.Stdin); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func runPerft(fen string, depth int, profiled bool) error {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	if profiled {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	out := message.NewPrinter(language.English)
	start := time.Now()
	nodes := board.Perft(pos, depth)
	elapsed := time.Since(start)

	out.Fprintf(os.Stdout, "perft %d: %d nodes in %v\n", depth, nodes, elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		out.Fprintf(os.Stdout, "%d nodes/s\n", int64(float64(nodes)/secs))
	}
	fmt.Fprintln(os.Stdout, pos.ToFEN())
	return nil
}
