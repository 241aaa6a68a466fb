package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWord is reported for words containing anything but a-z.
	ErrInvalidWord = errors.New("invalid word")
	// ErrNotFound is reported when a word is not stored in the trie.
	ErrNotFound = errors.New("word not found")
)

// ValidateWord reports whether every character of word lies in a-z.
// The empty string is valid.
func ValidateWord(word string) bool {
	return Validate(word) == nil
}

// Validate is like ValidateWord but describes the first offending character.
// The returned error wraps ErrInvalidWord.
func Validate(word string) error {
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return fmt.Errorf("%w: %q has %q at offset %d", ErrInvalidWord, word, word[i], i)
		}
	}
	return nil
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }
