package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	mg "chess-core/chessmg"
)

func main() {
	// Flags (env fallbacks).
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	fen := flag.String("fen", getenv("CHESSMG_FEN", ""), "starting position (FEN or dotted record); default is the initial position")
	useColor := flag.Bool("color", getenb("CHESSMG_COLOR", tty), "colored board output")
	logPath := flag.String("log", getenv("CHESSMG_LOG", ""), "append log output to this file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("chessmg: ")
	if *logPath != "" {
		initLog(*logPath)
	}

	game := mg.NewGame()
	if *fen != "" {
		g, err := mg.LoadPosition(*fen)
		if err != nil {
			log.Fatalf("-fen: %v", err)
		}
		game = g
	}

	sh := newShell(game, os.Stdout)
	sh.color = *useColor
	sh.prompt = isatty.IsTerminal(os.Stdin.Fd())
	if err := sh.run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}

func initLog(dest string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
