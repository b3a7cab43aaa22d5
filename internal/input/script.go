package input

import "github.com/spacehole-rogue/spacelab/internal/game"

// Script replays a fixed sequence of frames, one per Poll. Frames past the
// end of the script are empty.
type Script struct {
	frames []game.ActionSet
	next   int
}

// NewScript creates a script from frames.
func NewScript(frames ...game.ActionSet) *Script {
	return &Script{frames: frames}
}

// Repeat returns n copies of set, for building scripts.
func Repeat(set game.ActionSet, n int) []game.ActionSet {
	out := make([]game.ActionSet, n)
	for i := range out {
		out[i] = set
	}
	return out
}

// Press returns a frame where each action was pressed this tick.
func Press(actions ...game.Action) game.ActionSet {
	var s game.ActionSet
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

// Poll returns the next frame.
func (s *Script) Poll() game.ActionSet {
	if s.next >= len(s.frames) {
		s.next++
		return game.ActionSet{}
	}
	f := s.frames[s.next]
	s.next++
	return f
}

// Done reports whether every frame has been played.
func (s *Script) Done() bool { return s.next >= len(s.frames) }

// Len returns the number of scripted frames.
func (s *Script) Len() int { return len(s.frames) }
