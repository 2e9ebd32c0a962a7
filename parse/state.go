package parse

// State is a cursor over the tokens of one parse run. Positions reported by
// Position are 1-based and relative to the first token after the start
// offset, which is how instances and arguments are numbered.
type State interface {
	Position() int      // 1-based position of the current token
	Advance() bool      // move to the next token
	CurrentArg() string // current token, "" before the first Advance
	Len() int           // number of tokens in the run
}

// DefaultState is the slice-backed State.
type DefaultState struct {
	pos  int
	args []string
}

// NewState returns a State over args, skipping the first start tokens. A start
// past the end yields an empty run.
func NewState(args []string, start int) State {
	switch {
	case start < 0:
		start = 0
	case start > len(args):
		start = len(args)
	}

	return &DefaultState{pos: -1, args: args[start:]}
}

func (s *DefaultState) Position() int {
	return s.pos + 1
}

func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

func (s *DefaultState) Len() int {
	return len(s.args)
}
