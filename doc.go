/*
Package trie provides a prefix tree over the lowercase ASCII alphabet.
It supports exact-word membership, insertion, deletion with pruning of
nodes no word needs any more, alphabetical enumeration of the whole
vocabulary and prefix based autocompletion.

Words are restricted to the letters a-z. Anything else is rejected
quietly: Insert and Remove do nothing, Search reports false and
SuggestionsForPrefix returns no suggestions.
*/
package trie
