// Command listrepl is an interactive shell for building and editing a
// linked list of ints. Type help for the list of commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
)

func main() {
	log.SetFlags(0)

	configFile := flag.String("config", defaultConfigFile(), "ini config file")
	flag.Parse()
	if flag.NArg() > 0 {
		log.Fatalf("usage: %s [-config file]", os.Args[0])
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	lggr, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalln("Cannot create logger:", err)
	}
	defer lggr.Sync()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.History,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	sh := newShell(rl.Stdout(), cfg.Delimiter, lggr)
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			lggr.Errorw("Readline error", "err", err)
			continue
		}
		if err := sh.exec(line); err != nil {
			lggr.Debugw("Command failed", "line", line, "err", err)
			fmt.Fprintln(rl.Stderr(), err)
		}
	}
}
