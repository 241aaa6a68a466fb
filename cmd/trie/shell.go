package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-prefix-trie"
	"github.com/sarthakjha889/go-prefix-trie/internal/config"
)

const shellHelp = `Commands:
  insert <word>...   add words
  remove <word>...   remove words
  search <word>      report whether word is stored
  suggest <prefix>   list words starting with prefix
  words              list every word
  size               count the words
  load <path>        insert every line of a word list
  help               show this message
  quit               leave the shell
`

type shell struct {
	trie   *trie.Trie
	cfg    *config.Config
	logger zerolog.Logger
	out    io.Writer
	prompt bool
}

// run reads one command per line from in until EOF, quit or ctx is done.
// Lines are read on a separate goroutine so cancellation does not wait for
// the next line; that goroutine stays blocked on in until it yields a line
// or fails.
func (s *shell) run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	go readLines(in, lines, errc, done)
	defer close(done)

	for {
		if s.prompt {
			fmt.Fprint(s.out, "trie> ")
		}
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			return err
		case line := <-lines:
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if !s.exec(ctx, fields[0], fields[1:]) {
				return nil
			}
		}
	}
}

// readLines sends each line of in on lines, without its terminator, and
// finally a nil error on EOF or the read error on errc. It stops early once
// done is closed.
func readLines(in io.Reader, lines chan<- string, errc chan<- error, done <-chan struct{}) {
	br := bufio.NewReader(in)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			select {
			case lines <- strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"):
			case <-done:
				return
			}
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			errc <- err
			return
		}
	}
}

// exec runs a single command and reports whether the shell should go on.
func (s *shell) exec(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "insert":
		for _, word := range args {
			if err := trie.Validate(word); err != nil {
				fmt.Fprintln(s.out, err)
			}
		}
		s.trie.Insert(args...)
	case "remove":
		for _, word := range args {
			if !s.trie.Search(word) {
				fmt.Fprintf(s.out, "%s: %v\n", word, trie.ErrNotFound)
				continue
			}
			s.trie.Remove(word)
		}
	case "search":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: search <word>")
			break
		}
		fmt.Fprintln(s.out, s.trie.Search(args[0]))
	case "suggest":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: suggest <prefix>")
			break
		}
		for _, word := range s.trie.SuggestionsForPrefix(args[0]) {
			fmt.Fprintln(s.out, word)
		}
	case "words":
		if err := s.trie.Fprint(s.out); err != nil {
			s.logger.Error().Err(err).Msg("failed to print words")
		}
	case "size":
		fmt.Fprintln(s.out, s.trie.Size())
	case "load":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: load <path>")
			break
		}
		if err := load(ctx, s.trie, s.cfg, args[0], s.logger); err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
	case "help":
		fmt.Fprint(s.out, shellHelp)
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	return true
}
