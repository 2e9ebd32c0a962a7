package clutils

import (
	"log/slog"
	"strconv"

	"github.com/definitelyprobably/libclutils/i18n"
	"github.com/definitelyprobably/libclutils/types/orderedmap"
	"golang.org/x/text/language"
)

// FlagType is the shape of a flag name, derived from its leading markers
// unless given explicitly.
type FlagType int

const (
	UnsetType FlagType = iota // UnsetType names carry no markers and match whole tokens
	ShortType                 // ShortType names have one leading marker and may be chained
	LongType                  // LongType names have two or more leading markers
)

func (t FlagType) String() string {
	switch t {
	case ShortType:
		return "short"
	case LongType:
		return "long"
	default:
		return "unset"
	}
}

// FlagClass determines how a flag treats input.
type FlagClass int

const (
	Bare      FlagClass = iota // Bare flags never take input
	Optional                   // Optional flags may take input
	Mandatory                  // Mandatory flags must resolve an input
	Stop                       // Stop flags end flag processing
)

func (c FlagClass) String() string {
	switch c {
	case Bare:
		return "bare"
	case Optional:
		return "optional"
	case Mandatory:
		return "mandatory"
	case Stop:
		return "stop"
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}

// InputType records where an input came from.
type InputType int

const (
	NoInput  InputType = iota
	Internal           // split off the flag's own token
	External           // taken from the following token
)

func (t InputType) String() string {
	switch t {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return "unset"
	}
}

// Greedy is the policy deciding whether a pending flag consumes a flag-shaped
// token as its input.
type Greedy int

const (
	GreedyNo Greedy = iota
	GreedyLax
	GreedyYes
)

func (g Greedy) String() string {
	switch g {
	case GreedyLax:
		return "lax"
	case GreedyYes:
		return "yes"
	default:
		return "no"
	}
}

// Aggressive controls whether collected unrecognized flags are ever taken
// as another flag's input.
type Aggressive int

const (
	AggressiveNo Aggressive = iota
	AggressiveYes
)

// LimitType is the result of comparing a flag's instance count to its maximum.
type LimitType int

const (
	LimitWithin     LimitType = iota // more instances may be recorded
	LimitWithout                     // the maximum has been reached
	LimitProscribed                  // the flag may never be given
)

func (l LimitType) String() string {
	switch l {
	case LimitWithout:
		return "without"
	case LimitProscribed:
		return "proscribed"
	default:
		return "within"
	}
}

const (
	// Unlimited lifts the cap on flag occurrences, arguments or unrecognized flags.
	Unlimited = -1
	// Last selects the most recent instance in index based queries.
	Last = -1
)

// Arg is a positional argument or an unrecognized flag.
type Arg struct {
	text   string
	pos    int
	subpos int
}

func (a Arg) Text() string { return a.text }
func (a Arg) Pos() int     { return a.pos }

// SubPos is always 0: arguments and unrecognized flags take a whole token and
// are never split out of a chain.
func (a Arg) SubPos() int { return a.subpos }

// Input is the optional value attached to an instance.
type Input struct {
	set  bool
	text string
	typ  InputType
}

func (i Input) IsSet() bool      { return i.set }
func (i Input) Text() string     { return i.text }
func (i Input) Type() InputType  { return i.typ }
func (i Input) IsInternal() bool { return i.set && i.typ == Internal }
func (i Input) IsExternal() bool { return i.set && i.typ == External }

// Instance is one recorded occurrence of a declared flag.
type Instance struct {
	name   string
	pos    int
	subpos int
	input  Input
}

// Name returns the synonym used on the command line.
func (i Instance) Name() string   { return i.name }
func (i Instance) Pos() int       { return i.pos }
func (i Instance) SubPos() int    { return i.subpos }
func (i Instance) Input() Input   { return i.input }
func (i Instance) HasInput() bool { return i.input.set }

// Ref locates a declared name: Flag indexes the declaration order and Name
// the flag's synonyms. Refs stay valid until ClearDeclarations.
type Ref struct {
	Flag int
	Name int
}

// ConfigureParserFunc is used when configuring a Parser with NewParserWith.
type ConfigureParserFunc func(p *Parser, err *error)

// Parser owns flag declarations, parsing policy and the results of the last
// Parse. It is not safe for concurrent use.
type Parser struct {
	allowEmptyArg    bool
	allowEmptyInput  bool
	chaining         bool
	greedy           Greedy
	optionalGreedy   bool
	aggressive       bool
	unrecognizedOpts bool
	maxUnrecognized  int
	maxArgs          int

	preamble   string
	postscript string
	formats    map[ErrorKey]string
	lang       language.Tag
	bundle     *i18n.Bundle

	markers     []rune
	inputMarker rune

	flags        []*Flag
	args         []Arg
	unrecognized []Arg
	errors       []ErrorInfo

	lookup       *orderedmap.OrderedMap[string, Ref]
	shortNames   []string
	typesTainted bool
	mapTainted   bool

	logger *slog.Logger
}
