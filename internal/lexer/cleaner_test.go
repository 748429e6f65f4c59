package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanerStripsLineComments(t *testing.T) {
	lines := Lines("push constant 7 // comment\nadd // another")
	require.Equal(t, []string{"push constant 7", "add"}, lines)
}

func TestCleanerStripsBlockCommentsSingleLine(t *testing.T) {
	lines := Lines("push /* inline */ constant 7")
	require.Equal(t, []string{"push constant 7"}, lines)
}

func TestCleanerStripsMultilineBlockComments(t *testing.T) {
	text := "push constant 1\n/* start\nmiddle\nend */\nadd"
	lines := Lines(text)
	require.Equal(t, []string{"push constant 1", "add"}, lines)
}

func TestCleanerSkipsBlankLines(t *testing.T) {
	lines := Lines("\n\npush constant 1\n\n\nadd\n")
	require.Equal(t, []string{"push constant 1", "add"}, lines)
}

func TestCleanerUnterminatedBlockCommentConsumesRest(t *testing.T) {
	text := "push constant 1\n/* never closes\nadd\nsub"
	lines := Lines(text)
	assert.Equal(t, []string{"push constant 1"}, lines)
}

func TestCleanerDoesNotNestBlockComments(t *testing.T) {
	// "/* /* */ */" -- the first "*/" closes the comment, leaving a
	// trailing "*/" as source text (spec.md §9).
	lines := Lines("/* /* */ */")
	assert.Equal(t, []string{"*/"}, lines)
}

func TestCleanerPreservesCase(t *testing.T) {
	lines := Lines("label LOOP_Start")
	require.Equal(t, []string{"label LOOP_Start"}, lines)
}

func TestCleanerTrimsWhitespace(t *testing.T) {
	lines := Lines("   push constant 7   \n\tadd\t")
	require.Equal(t, []string{"push constant 7", "add"}, lines)
}
