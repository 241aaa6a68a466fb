package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	trie "github.com/sarthakjha889/go-prefix-trie"
	"github.com/sarthakjha889/go-prefix-trie/internal/config"
	"github.com/sarthakjha889/go-prefix-trie/wordlist"
)

var demoWords = []string{"apple", "cat", "bark", "applesauce", "catepillar", "catacomb", "catch", "zebra"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("trie", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { showHelp(stderr, fs) }
	config.Flags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	level, _ := cfg.Log.ZerologLevel()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	if fs.NArg() == 0 {
		showHelp(stderr, fs)
		return 1
	}

	t := trie.New().WithLogger(logger)
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]

	if cmd != "demo" && cmd != "config" && cfg.Words != "" {
		if err := load(ctx, t, cfg, cfg.Words, logger); err != nil {
			logger.Error().Err(err).Str("path", cfg.Words).Msg("failed to load word list")
			return 1
		}
	}

	switch cmd {
	case "demo":
		if err := demo(stdout); err != nil {
			logger.Error().Err(err).Msg("demo failed")
			return 1
		}
	case "words":
		if err := t.Fprint(stdout); err != nil {
			logger.Error().Err(err).Msg("failed to print words")
			return 1
		}
	case "suggest":
		if len(cmdArgs) != 1 {
			fmt.Fprintln(stderr, "usage: trie suggest <prefix>")
			return 2
		}
		for _, word := range t.SuggestionsForPrefix(cmdArgs[0]) {
			fmt.Fprintln(stdout, word)
		}
	case "search":
		if len(cmdArgs) != 1 {
			fmt.Fprintln(stderr, "usage: trie search <word>")
			return 2
		}
		found := t.Search(cmdArgs[0])
		fmt.Fprintln(stdout, found)
		if !found {
			return 1
		}
	case "size":
		fmt.Fprintln(stdout, t.Size())
	case "shell":
		prompt := cfg.Interactive
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			prompt = true
		}
		sh := &shell{trie: t, cfg: cfg, logger: logger, out: stdout, prompt: prompt}
		if err := sh.run(ctx, stdin); err != nil {
			logger.Error().Err(err).Msg("shell failed")
			return 1
		}
	case "config":
		out, err := cfg.YAML()
		if err != nil {
			logger.Error().Err(err).Msg("failed to render config")
			return 1
		}
		fmt.Fprint(stdout, out)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", cmd)
		showHelp(stderr, fs)
		return 1
	}
	return 0
}

func load(ctx context.Context, t *trie.Trie, cfg *config.Config, path string, logger zerolog.Logger) error {
	opts := []wordlist.Option{wordlist.WithLogger(logger)}
	if cfg.Fold {
		opts = append(opts, wordlist.WithFolding())
	}
	stats, err := wordlist.LoadFile(ctx, t, path, opts...)
	if err != nil {
		return err
	}
	logger.Info().
		Str("path", path).
		Int("lines", stats.Lines).
		Int("accepted", stats.Accepted).
		Int("rejected", stats.Rejected).
		Msg("word list loaded")
	return nil
}

func demo(w io.Writer) error {
	t := trie.New()
	t.Insert(demoWords...)

	fmt.Fprintln(w, "All words in Trie:")
	if err := t.Fprint(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Suggestions for prefix 'cat':")
	for _, suggestion := range t.SuggestionsForPrefix("cat") {
		fmt.Fprintln(w, suggestion)
	}
	return nil
}

func showHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `Lowercase prefix trie

Usage:
  trie [flags] <command> [arguments]

Commands:
  demo              Insert a few sample words and print them with suggestions for "cat"
  words             Print every word from the word list in alphabetical order
  suggest <prefix>  Print the words starting with prefix
  search <word>     Report whether word is in the word list
  size              Print the number of words
  shell             Read commands from stdin
  config            Print the effective configuration

Flags:
`)
	fmt.Fprint(w, fs.FlagUsages())
}
