package trie

// AlphabetSize is the number of distinct letters a node can branch on.
const AlphabetSize = 26

// Node is a node in a Trie. Each node owns up to AlphabetSize children, one
// per letter, stored at index letter-'a'. A nil slot means no stored word
// continues with that letter.
type Node struct {
	terminal bool
	letter   byte
	children [AlphabetSize]*Node
}

func newNode(letter byte) *Node {
	return &Node{letter: letter}
}

// IsTerminal reports whether the path from the root to n spells a stored word.
func (n *Node) IsTerminal() bool { return n.terminal }

// Letter returns the letter n represents, or 0 for the root.
func (n *Node) Letter() byte { return n.letter }

// Child returns the child of n for letter, or nil if there is none or letter
// is outside a-z.
func (n *Node) Child(letter byte) *Node {
	if !isLetter(letter) {
		return nil
	}
	return n.children[index(letter)]
}

// HasChildren reports whether any child slot of n is occupied.
func (n *Node) HasChildren() bool {
	for _, child := range n.children {
		if child != nil {
			return true
		}
	}
	return false
}

func index(letter byte) int { return int(letter - 'a') }

func letterAt(i int) byte { return byte('a' + i) }
