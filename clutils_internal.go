package clutils

import (
	"cmp"
	"slices"
	"strings"

	"github.com/definitelyprobably/libclutils/errs"
	"github.com/definitelyprobably/libclutils/types/orderedmap"
	"github.com/definitelyprobably/libclutils/types/queue"
)

// matchState is threaded through one Parse. A non-nil pending means the
// previous token left an optional or mandatory flag waiting for input.
type matchState struct {
	stopped bool
	pending *pendingFlag
}

type pendingFlag struct {
	flag    *Flag
	name    string
	pos     int
	subpos  int
	discard bool // the occurrence was rejected; its input is swallowed
}

// hit is a declared name found at the start of a token.
type hit struct {
	ref   Ref
	rest  string
	split bool // rest followed the input marker
}

// segment is one flag occurrence within a token.
type segment struct {
	ref   Ref
	name  string
	input Input
}

// prepare retypes names after a marker change and rebuilds the lookup map
// when declarations changed. A conflict leaves the map stale so the next call
// reports it again.
func (p *Parser) prepare() error {
	if p.typesTainted {
		for _, f := range p.flags {
			for i := range f.names {
				f.names[i].GuessType(p.markers, true)
			}
		}
		p.typesTainted = false
		p.mapTainted = true
	}
	if !p.mapTainted {
		return nil
	}

	lookup := orderedmap.NewOrderedMap[string, Ref]()
	var shorts []string
	for fi, f := range p.flags {
		for ni, n := range f.names {
			if lookup.Has(n.text) {
				return errs.ErrNameConflict.WithArgs(n.text)
			}
			lookup.Set(n.text, Ref{Flag: fi, Name: ni})
			if n.typ == ShortType {
				shorts = append(shorts, n.text)
			}
		}
	}
	slices.SortStableFunc(shorts, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	p.lookup = lookup
	p.shortNames = shorts
	p.mapTainted = false
	p.logger.Debug("lookup map rebuilt", "names", lookup.Count(), "short", len(shorts))

	return nil
}

func (p *Parser) flag(name string) (*Flag, error) {
	if err := p.prepare(); err != nil {
		return nil, err
	}
	ref, ok := p.lookup.Get(name)
	if !ok {
		return nil, errs.ErrUnknownName.WithArgs(name)
	}

	return p.flags[ref.Flag], nil
}

func (p *Parser) instanceOf(name string, idx int) (*Flag, Instance, error) {
	f, err := p.flag(name)
	if err != nil {
		return nil, Instance{}, err
	}
	inst, ok := f.instance(idx)
	if !ok {
		return f, Instance{}, errs.ErrIndexOutOfBounds.WithArgs(idx, name, f.Count())
	}

	return f, inst, nil
}

func (p *Parser) inputOf(name string, idx int) (Instance, error) {
	f, err := p.flag(name)
	if err != nil {
		return Instance{}, err
	}
	if f.class == Bare {
		return Instance{}, errs.ErrBareFlagInput.WithArgs(name)
	}
	_, inst, err := p.instanceOf(name, idx)

	return inst, err
}

func (p *Parser) nameAt(ref Ref) Name {
	return p.flags[ref.Flag].names[ref.Name]
}

// search finds the declared name a token starts with: the whole token, a long
// or unset name followed by the input marker, or else the longest short name
// which is a proper prefix.
func (p *Parser) search(token string) (hit, bool) {
	if ref, ok := p.lookup.Get(token); ok {
		return hit{ref: ref}, true
	}

	if i := strings.IndexRune(token, p.inputMarker); i > 0 {
		if ref, ok := p.lookup.Get(token[:i]); ok && !p.nameAt(ref).IsShort() {
			rest := token[i+len(string(p.inputMarker)):]
			return hit{ref: ref, rest: rest, split: true}, true
		}
	}

	return p.searchShort(token)
}

func (p *Parser) searchShort(token string) (hit, bool) {
	if ref, ok := p.lookup.Get(token); ok && p.nameAt(ref).IsShort() {
		return hit{ref: ref}, true
	}
	for _, short := range p.shortNames {
		if len(token) > len(short) && strings.HasPrefix(token, short) {
			ref, _ := p.lookup.Get(short)
			return hit{ref: ref, rest: token[len(short):]}, true
		}
	}

	return hit{}, false
}

// expand splits a token into its flag occurrences. Text left after a bare
// short flag continues the chain when, prefixed with that flag's markers, it
// starts with another short flag; any other leftover is internal input.
func (p *Parser) expand(token string) (*queue.Q[segment], bool) {
	h, ok := p.search(token)
	if !ok {
		return nil, false
	}

	segments := queue.New[segment]()
	for {
		f := p.flags[h.ref.Flag]
		name := f.names[h.ref.Name]
		seg := segment{ref: h.ref, name: name.text}

		if !h.split && h.rest == "" {
			segments.Enqueue(seg)
			break
		}

		if !h.split && f.class == Bare && p.chaining {
			next, ok := p.searchShort(name.markerPrefix(p.markers) + h.rest)
			if ok && len(next.rest) < len(h.rest) {
				segments.Enqueue(seg)
				h = next
				continue
			}
		}

		seg.input = Input{set: true, text: h.rest, typ: Internal}
		segments.Enqueue(seg)
		break
	}

	return segments, true
}

func (p *Parser) processToken(ms *matchState, token string, pos int) {
	if ms.stopped {
		p.stoppedToken(token, pos)
		return
	}

	segments, found := p.expand(token)

	if ms.pending != nil {
		if p.takesAsInput(ms.pending, token, found) {
			p.resolvePending(ms, token)
			return
		}
		p.closePending(ms)
	}

	if found {
		chained := segments.Len() > 1
		for i := 1; segments.Len() > 0; i++ {
			seg, _ := segments.Dequeue()
			subpos := 0
			if chained {
				subpos = i
			}
			p.occur(ms, seg, pos, subpos)
		}
		return
	}

	p.unmatched(token, pos)
}

// takesAsInput applies the greedy policy to the token after a pending flag.
func (p *Parser) takesAsInput(pf *pendingFlag, token string, recognized bool) bool {
	mandatory := pf.flag.class == Mandatory

	var take bool
	switch {
	case recognized:
		take = mandatory && p.greedy == GreedyYes
	case isMarked(token, p.markers):
		switch {
		case p.aggressive && p.maxUnrecognized != 0:
			take = false
		case mandatory:
			take = p.greedy != GreedyNo
		default:
			take = p.optionalGreedy && p.greedy != GreedyNo && !p.unrecognizedOpts
		}
	default:
		take = mandatory || p.maxArgs == 0 || p.optionalGreedy
	}

	p.logger.Debug("pending flag",
		"flag", pf.name,
		"token", token,
		"recognized", recognized,
		"greedy", p.greedy.String(),
		"take", take)

	return take
}

func (p *Parser) resolvePending(ms *matchState, token string) {
	pf := ms.pending
	ms.pending = nil
	if pf.discard {
		return
	}

	if token == "" && !p.allowEmptyInput {
		p.flagError(EmptyInput, pf.pos, pf.subpos, pf.name, nil)
		pf.flag.addInstance(pf.name, pf.pos, pf.subpos, Input{})
		return
	}
	pf.flag.addInstance(pf.name, pf.pos, pf.subpos, Input{set: true, text: token, typ: External})
}

// closePending ends a pending flag without input.
func (p *Parser) closePending(ms *matchState) {
	pf := ms.pending
	ms.pending = nil
	if pf == nil || pf.discard {
		return
	}

	if pf.flag.class == Mandatory {
		p.flagError(MissingInput, pf.pos, pf.subpos, pf.name, nil)
	}
	pf.flag.addInstance(pf.name, pf.pos, pf.subpos, Input{})
}

// occur records one flag occurrence, or the error which prevents it.
func (p *Parser) occur(ms *matchState, seg segment, pos, subpos int) {
	f := p.flags[seg.ref.Flag]

	switch f.WithinLimit() {
	case LimitProscribed:
		key := Proscribed
		if f.class == Stop {
			key = StopProscribed
		}
		p.flagError(key, pos, subpos, seg.name, nil)
		p.reject(ms, f, seg, pos, subpos)
		return
	case LimitWithout:
		p.flagError(Surplus, pos, subpos, seg.name, CountInput(f.max))
		p.reject(ms, f, seg, pos, subpos)
		return
	}

	p.logger.Debug("flag", "name", seg.name, "class", f.class.String(), "pos", pos, "subpos", subpos)

	switch f.class {
	case Bare, Stop:
		if seg.input.set {
			p.noInputError(f.class, pos, subpos, seg.name, seg.input.text)
		}
		f.addInstance(seg.name, pos, subpos, Input{})
		if f.class == Stop {
			ms.stopped = true
		}
	default:
		switch {
		case !seg.input.set:
			ms.pending = &pendingFlag{flag: f, name: seg.name, pos: pos, subpos: subpos}
		case seg.input.text == "" && !p.allowEmptyInput:
			p.flagError(EmptyInput, pos, subpos, seg.name, nil)
			f.addInstance(seg.name, pos, subpos, Input{})
		default:
			f.addInstance(seg.name, pos, subpos, seg.input)
		}
	}
}

// reject makes a refused flag which would have waited for input swallow that
// input, so it is not mistaken for an argument.
func (p *Parser) reject(ms *matchState, f *Flag, seg segment, pos, subpos int) {
	if f.takesInput() && !seg.input.set {
		ms.pending = &pendingFlag{flag: f, name: seg.name, pos: pos, subpos: subpos, discard: true}
	}
}

func (p *Parser) noInputError(class FlagClass, pos, subpos int, name, input string) {
	switch {
	case class == Bare && input == "":
		p.flagError(BareEmptyInput, pos, subpos, name, nil)
	case class == Bare:
		p.flagError(BareInput, pos, subpos, name, TextInput(input))
	case input == "":
		p.flagError(StopEmptyInput, pos, subpos, name, nil)
	default:
		p.flagError(StopInput, pos, subpos, name, TextInput(input))
	}
}

func (p *Parser) unmatched(token string, pos int) {
	if isMarked(token, p.markers) {
		if p.collectUnrecognized(token, pos) {
			return
		}
		p.unrecognizedError(pos, token, true)
		return
	}

	if token == "" && !p.allowEmptyArg {
		p.argEmptyError(pos)
		return
	}
	if p.collectArgument(token, pos) {
		return
	}
	p.unrecognizedError(pos, token, false)
}

// stoppedToken handles every token after a stop flag.
func (p *Parser) stoppedToken(token string, pos int) {
	if token == "" && !p.allowEmptyArg {
		p.argEmptyError(pos)
		return
	}
	if p.collectArgument(token, pos) {
		return
	}

	marked := isMarked(token, p.markers)
	if marked && p.collectUnrecognized(token, pos) {
		return
	}
	p.unrecognizedError(pos, token, marked)
}

func (p *Parser) collectArgument(token string, pos int) bool {
	if !withinCap(p.maxArgs, len(p.args)) {
		return false
	}
	p.args = append(p.args, Arg{text: token, pos: pos})
	p.logger.Debug("argument", "text", token, "pos", pos)

	return true
}

func (p *Parser) collectUnrecognized(token string, pos int) bool {
	if !withinCap(p.maxUnrecognized, len(p.unrecognized)) {
		return false
	}
	p.unrecognized = append(p.unrecognized, Arg{text: token, pos: pos})
	p.logger.Debug("unrecognized", "text", token, "pos", pos)

	return true
}

func (p *Parser) finish(ms *matchState) {
	p.closePending(ms)
}

func withinCap(max, n int) bool {
	return max == Unlimited || n < max
}
