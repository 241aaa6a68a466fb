package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trie "github.com/sarthakjha889/go-prefix-trie"
	"github.com/sarthakjha889/go-prefix-trie/internal/config"
)

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	code, out, _ := runCmd(t, "", "demo")
	require.Equal(t, 0, code)
	assert.Equal(t, `All words in Trie:
apple
applesauce
bark
cat
catacomb
catch
catepillar
zebra

Suggestions for prefix 'cat':
cat
catacomb
catch
catepillar
`, out)
}

func TestWordListCommands(t *testing.T) {
	path := writeWords(t, "cat", "cats", "catsup", "Catch", "catch", "catacomb", "dogs", "bad word")

	t.Run("words", func(t *testing.T) {
		code, out, _ := runCmd(t, "", "--words", path, "words")
		require.Equal(t, 0, code)
		assert.Equal(t, "cat\ncatacomb\ncatch\ncats\ncatsup\ndogs\n", out)
	})

	t.Run("suggest", func(t *testing.T) {
		code, out, _ := runCmd(t, "", "--words", path, "suggest", "cats")
		require.Equal(t, 0, code)
		assert.Equal(t, "cats\ncatsup\n", out)
	})

	t.Run("search", func(t *testing.T) {
		code, out, _ := runCmd(t, "", "--words", path, "search", "dogs")
		assert.Equal(t, 0, code)
		assert.Equal(t, "true\n", out)

		code, out, _ = runCmd(t, "", "--words", path, "search", "dog")
		assert.Equal(t, 1, code)
		assert.Equal(t, "false\n", out)
	})

	t.Run("size", func(t *testing.T) {
		code, out, _ := runCmd(t, "", "--words", path, "size")
		require.Equal(t, 0, code)
		assert.Equal(t, "6\n", out)
	})

	t.Run("fold", func(t *testing.T) {
		code, out, _ := runCmd(t, "", "--words", writeWords(t, "Éclair"), "--fold", "words")
		require.Equal(t, 0, code)
		assert.Equal(t, "eclair\n", out)
	})

	t.Run("missing list", func(t *testing.T) {
		code, _, errOut := runCmd(t, "", "--words", filepath.Join(t.TempDir(), "none"), "words")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "failed to load word list")
	})
}

func TestShell(t *testing.T) {
	input := `insert cat cats Cat
search cat
remove cat dog
search cat
search cats
suggest ca
size
frobnicate
quit
insert never
`
	code, out, _ := runCmd(t, input, "shell")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "invalid word")
	assert.Equal(t, "true", lines[1])
	assert.Equal(t, "dog: word not found", lines[2])
	assert.Equal(t, "false", lines[3])
	assert.Equal(t, "true", lines[4])
	assert.Equal(t, "cats", lines[5])
	assert.Equal(t, "1", lines[6])
	assert.Contains(t, lines[7], "unknown command")
}

func TestShellLoad(t *testing.T) {
	path := writeWords(t, "ant", "bee")
	code, out, _ := runCmd(t, "load "+path+"\nwords\n", "shell")
	require.Equal(t, 0, code)
	assert.Equal(t, "ant\nbee\n", out)
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCmd(t, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Usage:")

	code, _, errOut = runCmd(t, "", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Unknown command: nope")
}

func TestConfigCommand(t *testing.T) {
	code, out, _ := runCmd(t, "", "--words", "list.txt", "config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "words: list.txt")
}

func TestShellLongLine(t *testing.T) {
	long := strings.Repeat("z", 70000)
	code, out, _ := runCmd(t, "insert "+long+"\ninsert ant\nsize\n", "shell")
	require.Equal(t, 0, code)
	assert.Equal(t, "2\n", out)
}

func TestShellStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	sh := &shell{trie: trie.New(), cfg: &config.Config{}, out: &out}
	errc := make(chan error, 1)
	go func() { errc <- sh.run(ctx, pr) }()

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shell kept waiting for input after cancellation")
	}
}
