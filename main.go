package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
)

var (
	promptFlag   = flag.String("p", "", "use `string` as an interactive prompt")
	suppressFlag = flag.Bool("s", false, "suppress diagnostics")
	verboseFlag  = flag.Bool("v", false, "print full error messages instead of ?")
	configFlag   = flag.String("c", "", "read settings from `file` (TOML or YAML)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-p string] [-s] [-v] [-c file] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(run())
}

func run() int {
	path := *configFlag
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, *configFlag != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	closer, err := setupLogging(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	opts := cfg.options()
	if rows := termRows(); rows > 1 && cfg.Scroll == 0 {
		opts = append(opts, WithScroll(rows-1))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			opts = append(opts, WithPrompt(*promptFlag))
		case "s":
			opts = append(opts, WithSilent(*suppressFlag))
		case "v":
			opts = append(opts, WithVerbose(*verboseFlag))
		}
	})
	if flag.NArg() > 0 {
		opts = append(opts, WithFile(flag.Arg(0)))
	}

	ed := NewEditor(opts...)
	if siz := ed.Size(); siz > 0 {
		ed.printSize(siz)
	}
	if err := ed.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// termRows returns the height of the terminal on stdout, or 0 when
// stdout is not a terminal.
func termRows() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	_, rows, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return rows
}
