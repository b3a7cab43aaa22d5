package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // cyan
	MsgWarning                    // yellow
	MsgCritical                   // red
	MsgNav                        // green, docking and navigation
	MsgCargo                      // white
)

// Message is a single entry in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
	Tick     uint64
}

// MessageLog is a bounded FIFO of player-facing messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
	now      func() uint64
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, evicting the oldest lines if full.
// Long messages are wrapped to fit the comms panel.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	const maxWidth = 55
	var tick uint64
	if l.now != nil {
		tick = l.now()
	}
	for _, line := range wrapText(text, maxWidth) {
		msg := Message{Text: line, Priority: priority, Tick: tick}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits text into lines no longer than maxWidth where word
// boundaries allow.
func wrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
