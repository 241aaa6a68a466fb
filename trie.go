package trie

import (
	"sync"

	"github.com/rs/zerolog"
)

// Trie is a prefix tree of lowercase words. The zero value is not usable,
// create one with New.
type Trie struct {
	root   *Node
	mu     sync.RWMutex
	logger zerolog.Logger
}

// New creates a new empty trie. Diagnostics are discarded until a logger is
// attached with WithLogger.
func New() *Trie {
	t := new(Trie)
	t.root = newNode(0)
	t.logger = zerolog.Nop()
	return t
}

// WithLogger sets the logger used for diagnostics such as rejected words.
func (t *Trie) WithLogger(logger zerolog.Logger) *Trie {
	t.logger = logger
	return t
}

// Root returns the sentinel root node.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds words to the trie in order. Invalid words are skipped and
// the empty string is ignored. Inserting a word that is already present
// changes nothing.
func (t *Trie) Insert(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.insertInternal(word)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(word string) {
	if err := Validate(word); err != nil {
		t.logger.Info().Err(err).Str("word", word).Msg("rejected invalid word")
		return
	}
	if len(word) == 0 {
		return
	}
	current := t.root
	for i := 0; i < len(word); i++ {
		letter := word[i]
		child := current.children[index(letter)]
		if child == nil {
			child = newNode(letter)
			current.children[index(letter)] = child
		}
		current = child
	}
	current.terminal = true
}

// Search reports whether word was inserted and not removed since.
func (t *Trie) Search(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.searchInternal(word)
}

func (t *Trie) searchInternal(word string) bool {
	if len(word) == 0 || !ValidateWord(word) {
		return false
	}
	n := t.findInternal(word)
	return n != nil && n.terminal
}

// Remove deletes word from the trie and prunes every node that no longer
// leads to a stored word. Removing an invalid or absent word does nothing.
func (t *Trie) Remove(word string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := Validate(word); err != nil {
		t.logger.Debug().Str("word", word).Err(err).Msg("nothing to remove")
		return
	}
	if !t.searchInternal(word) {
		t.logger.Debug().Str("word", word).Err(ErrNotFound).Msg("nothing to remove")
		return
	}

	// path[i] is the node for word[i]; the parent of path[0] is the root.
	path := make([]*Node, 0, len(word))
	current := t.root
	for i := 0; i < len(word); i++ {
		current = current.children[index(word[i])]
		path = append(path, current)
	}

	last := len(path) - 1
	for i := last; i >= 0; i-- {
		n := path[i]
		if n.HasChildren() {
			// Still a prefix of longer words: nothing above it can go.
			if i == last {
				n.terminal = false
			}
			break
		}
		if i != last && n.terminal {
			// A shorter word ends here.
			break
		}
		parent := t.root
		if i > 0 {
			parent = path[i-1]
		}
		parent.children[index(n.letter)] = nil
	}
}
