// Package wordlist loads line-delimited word lists into a trie.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	trie "github.com/sarthakjha889/go-prefix-trie"
)

// Inserter is the part of *trie.Trie the loader needs.
type Inserter interface {
	Insert(words ...string)
}

// Stats summarises a load.
type Stats struct {
	Lines    int
	Accepted int
	Rejected int
	Blank    int
}

type options struct {
	fold   bool
	logger zerolog.Logger
}

// Option configures Load.
type Option func(*options)

// WithFolding strips accents and lowercases every line before it is inserted,
// so that "Café" is stored as "cafe". Lines are passed through untouched
// otherwise.
func WithFolding() Option {
	return func(o *options) { o.fold = true }
}

// WithLogger sets the logger used to report rejected lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Load reads r one line at a time and inserts every line into t in order.
// Lines may be of any length and are not filtered: words the trie does not
// accept are rejected by Insert itself and only counted here.
func Load(ctx context.Context, t Inserter, r io.Reader, opts ...Option) (Stats, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var stats Stats
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return stats, fmt.Errorf("failed to read word list: %w", err)
		}
		if len(line) == 0 && err == io.EOF {
			return stats, nil
		}
		stats.Lines++
		word := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if o.fold {
			word = Fold(word)
		}
		switch verr := trie.Validate(word); {
		case word == "":
			stats.Blank++
		case verr != nil:
			stats.Rejected++
			o.logger.Debug().Int("line", stats.Lines).Err(verr).Msg("word list line rejected")
		default:
			stats.Accepted++
		}
		t.Insert(word)
		if err == io.EOF {
			return stats, nil
		}
	}
}

// LoadFile opens path and loads it with Load.
func LoadFile(ctx context.Context, t Inserter, path string, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return Load(ctx, t, f, opts...)
}

// Fold decomposes word, drops combining marks and lowercases the result.
// If the transformation fails word is returned unchanged.
func Fold(word string) string {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Lower(language.Und))
	folded, _, err := transform.String(transformer, word)
	if err != nil {
		return word
	}
	return folded
}
