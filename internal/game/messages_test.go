package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLog_EvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"one", "two", "three", "four"} {
		l.Add(s, MsgInfo)
	}
	require.Len(t, l.Messages, 3)
	assert.Equal(t, "two", l.Messages[0].Text)
	assert.Equal(t, "four", l.Messages[2].Text)

	recent := l.Recent(10)
	assert.Len(t, recent, 3)
	assert.Equal(t, "four", l.Recent(1)[0].Text)
}

func TestMessageLog_WrapsLongLines(t *testing.T) {
	l := NewMessageLog(10)
	long := strings.Repeat("word ", 20)
	l.Add(long, MsgWarning)

	require.Greater(t, len(l.Messages), 1)
	for _, m := range l.Messages {
		assert.LessOrEqual(t, len(m.Text), 55)
		assert.Equal(t, MsgWarning, m.Priority)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("   ", 10))
	assert.Equal(t, []string{"a b", "c"}, wrapText("a b c", 3))
	assert.Equal(t, []string{"unbreakable"}, wrapText("unbreakable", 4))
}
