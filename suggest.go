package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// FindEndOfPrefix returns the node reached by following prefix from the
// root, or nil as soon as a letter has no matching child. The empty prefix
// yields the root.
func (t *Trie) FindEndOfPrefix(prefix string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.findInternal(prefix)
}

func (t *Trie) findInternal(prefix string) *Node {
	current := t.root
	for i := 0; i < len(prefix); i++ {
		current = current.Child(prefix[i])
		if current == nil {
			return nil
		}
	}
	return current
}

// SuggestionsForPrefix returns every stored word starting with prefix, the
// prefix itself included when it is a word, in alphabetical order. An empty
// or invalid prefix has no suggestions.
func (t *Trie) SuggestionsForPrefix(prefix string) []string {
	suggestions := []string{}
	if len(prefix) == 0 || !ValidateWord(prefix) {
		return suggestions
	}
	t.Walk(prefix, func(word string) bool {
		suggestions = append(suggestions, word)
		return true
	})
	return suggestions
}

// GetAllWords returns every stored word in alphabetical order.
func (t *Trie) GetAllWords() []string {
	words := []string{}
	t.Walk("", func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// Size returns the number of stored words. It enumerates the trie, so it
// costs as much as GetAllWords.
func (t *Trie) Size() int {
	return len(t.GetAllWords())
}

// Walk calls fn for every stored word starting with prefix, in alphabetical
// order, until fn returns false. The empty prefix walks the whole trie.
// fn runs while the trie is read-locked, so it must not call any method of
// the trie: a call that locks can deadlock against a waiting writer and one
// that modifies always does.
func (t *Trie) Walk(prefix string, fn func(word string) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !ValidateWord(prefix) {
		return
	}
	start := t.findInternal(prefix)
	if start == nil {
		return
	}
	buf := make([]byte, len(prefix), len(prefix)+16)
	copy(buf, prefix)
	start.collect(buf, fn)
}

// collect visits n and its descendants in pre-order, children in index
// order, which is alphabetical. buf holds the word spelled down to n.
func (n *Node) collect(buf []byte, fn func(word string) bool) bool {
	if n.terminal && !fn(string(buf)) {
		return false
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		if !child.collect(append(buf, letterAt(i)), fn) {
			return false
		}
	}
	return true
}

// Print writes every stored word to standard output, one per line.
func (t *Trie) Print() {
	_ = t.Fprint(os.Stdout)
}

// Fprint writes every stored word to w, one per line.
func (t *Trie) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Walk("", func(word string) bool {
		_, err = fmt.Fprintln(bw, word)
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
