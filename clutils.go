// Copyright 2021-2026, the libclutils authors. All rights reserved.

// Package clutils provides declarative command-line parsing.
//
// Flags are declared in one of 4 classes:
//
//	Bare - a flag which never takes an input (-v)
//	Optional - a flag which may take an input (-o, -oFILE, --out=FILE, --out FILE)
//	Mandatory - a flag which must take an input
//	Stop - a flag after which every token is an argument (--)
//
// A Parser classifies each token of a command line as a flag occurrence, the
// input of a flag, an unrecognized flag or a positional argument. Problems are
// recorded rather than returned and can be rendered with per-error templates
// once parsing is done. Short flags may be chained (-abc) and the characters
// introducing a flag are configurable.
package clutils

import (
	"log/slog"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/definitelyprobably/libclutils/errs"
	"github.com/definitelyprobably/libclutils/i18n"
	"github.com/definitelyprobably/libclutils/parse"
	"github.com/definitelyprobably/libclutils/types/orderedmap"
	"golang.org/x/text/language"
)

// NewParser returns a Parser with the default policy: '-' introduces flags,
// '=' separates an input, chaining is on, nothing is greedy and neither
// arguments nor unrecognized flags are accepted.
func NewParser() *Parser {
	return &Parser{
		chaining:     true,
		formats:      map[ErrorKey]string{},
		lang:         language.English,
		bundle:       i18n.Default(),
		markers:      []rune{'-'},
		inputMarker:  '=',
		lookup:       orderedmap.NewOrderedMap[string, Ref](),
		typesTainted: true,
		mapTainted:   true,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// AddBare declares a flag which never takes input.
func (s *Parser) AddBare(names ...string) error {
	return s.addNamed(Bare, names)
}

// AddOptional declares a flag which may take input.
func (s *Parser) AddOptional(names ...string) error {
	return s.addNamed(Optional, names)
}

// AddMandatory declares a flag which requires input.
func (s *Parser) AddMandatory(names ...string) error {
	return s.addNamed(Mandatory, names)
}

// AddStop declares a flag which ends flag processing.
func (s *Parser) AddStop(names ...string) error {
	return s.addNamed(Stop, names)
}

func (s *Parser) addNamed(class FlagClass, texts []string) error {
	names := make([]Name, 0, len(texts))
	for _, text := range texts {
		names = append(names, NewName(text))
	}

	return s.AddFlag(class, Unlimited, names...)
}

// AddFlag declares a flag of class which may occur at most max times
// (Unlimited for no cap, 0 to proscribe it). The first name is canonical.
// Names are only checked for conflicts when the lookup map is next built,
// i.e. by the next Parse or query.
func (s *Parser) AddFlag(class FlagClass, max int, names ...Name) error {
	if class < Bare || class > Stop {
		return errs.ErrUnknownClass.WithArgs(class.String())
	}
	if len(names) == 0 {
		return errs.ErrNoNames
	}
	for _, n := range names {
		if err := n.validate(); err != nil {
			return err
		}
	}

	s.flags = append(s.flags, newFlag(class, max, names))
	s.typesTainted = true
	s.mapTainted = true

	return nil
}

// AllowEmptyArguments accepts zero-length positional arguments.
func (s *Parser) AllowEmptyArguments(allow bool) {
	s.allowEmptyArg = allow
}

// AllowEmptyInputs accepts zero-length flag inputs.
func (s *Parser) AllowEmptyInputs(allow bool) {
	s.allowEmptyInput = allow
}

// AllowArguments collects up to max positional arguments. Any negative max
// is Unlimited and 0 rejects arguments.
func (s *Parser) AllowArguments(max int) {
	s.maxArgs = normalizeMax(max)
}

// AllowUnrecognizedFlags collects up to max flag-like tokens which match no
// declaration. With AggressiveYes a collected token is never taken as the
// input of a pending flag.
func (s *Parser) AllowUnrecognizedFlags(max int, aggressive Aggressive) {
	s.maxUnrecognized = normalizeMax(max)
	s.aggressive = aggressive == AggressiveYes
	s.unrecognizedOpts = false
}

// AllowUnrecognizedOpts collects unrecognized flags like AllowUnrecognizedFlags
// and also keeps optional flags from taking them as input.
func (s *Parser) AllowUnrecognizedOpts(max int) {
	s.maxUnrecognized = normalizeMax(max)
	s.aggressive = false
	s.unrecognizedOpts = true
}

// SetChaining toggles short flag chaining (-abc for -a -b -c).
func (s *Parser) SetChaining(chaining bool) {
	s.chaining = chaining
}

// SetGreedy sets how eagerly a mandatory flag takes a flag-like token as input.
func (s *Parser) SetGreedy(greedy Greedy) error {
	if greedy < GreedyNo || greedy > GreedyYes {
		return errs.ErrUnknownGreedy.WithArgs(greedy.String())
	}
	s.greedy = greedy

	return nil
}

// SetOptionalGreedy lets optional flags take input the way mandatory flags do.
func (s *Parser) SetOptionalGreedy(greedy bool) {
	s.optionalGreedy = greedy
}

// SetFlagMarkers replaces the characters which introduce a flag. Names built
// with NewName are retyped against the new markers.
func (s *Parser) SetFlagMarkers(markers ...rune) error {
	if len(markers) == 0 {
		return errs.ErrNoMarkers
	}
	unique := make([]rune, 0, len(markers))
	for _, r := range markers {
		if err := validMarker(r); err != nil {
			return err
		}
		if !slices.Contains(unique, r) {
			unique = append(unique, r)
		}
	}

	s.markers = unique
	s.typesTainted = true
	s.mapTainted = true

	return nil
}

// AddFlagMarkers adds characters which introduce a flag.
func (s *Parser) AddFlagMarkers(markers ...rune) error {
	for _, r := range markers {
		if err := validMarker(r); err != nil {
			return err
		}
		if !slices.Contains(s.markers, r) {
			s.markers = append(s.markers, r)
		}
	}
	s.typesTainted = true
	s.mapTainted = true

	return nil
}

func (s *Parser) FlagMarkers() []rune {
	return slices.Clone(s.markers)
}

// SetInputMarker sets the character separating a long flag from its input.
func (s *Parser) SetInputMarker(marker rune) error {
	if err := validMarker(marker); err != nil {
		return err
	}
	s.inputMarker = marker

	return nil
}

func (s *Parser) InputMarker() rune {
	return s.inputMarker
}

func (s *Parser) SetPreamble(text string) {
	s.preamble = text
}

func (s *Parser) SetPostscript(text string) {
	s.postscript = text
}

// Preamble returns the text written before the error block.
func (s *Parser) Preamble() string {
	return s.preamble
}

// Postscript returns the text written after the error block.
func (s *Parser) Postscript() string {
	return s.postscript
}

// SetLanguage selects the language of the default error templates. A tag
// without its own locale falls back to the closest available one.
func (s *Parser) SetLanguage(lang language.Tag) error {
	if !s.bundle.HasLanguage(lang) {
		matched := s.bundle.Match(lang)
		want, _ := lang.Base()
		got, _ := matched.Base()
		if want != got {
			return errs.ErrUnknownLanguage.WithArgs(lang.String())
		}
		lang = matched
	}
	s.lang = lang

	return nil
}

func (s *Parser) Language() language.Tag {
	return s.lang
}

// SetLogger routes debug tracing of the parse to logger. A nil logger
// silences it.
func (s *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s.logger = logger
}

// Parse classifies args. It reports whether any parse error was recorded;
// err is only set when the declarations themselves are unusable.
func (s *Parser) Parse(args ...string) (bool, error) {
	return s.ParseFrom(args, 0)
}

// ParseFrom parses args from index start, typically 1 to skip the program
// name. Positions are counted from the first parsed token.
func (s *Parser) ParseFrom(args []string, start int) (bool, error) {
	s.Clear()
	if err := s.prepare(); err != nil {
		return false, err
	}

	state := parse.NewState(args, start)
	s.logger.Debug("parse start", "tokens", state.Len(), "markers", string(s.markers))

	var ms matchState
	for state.Advance() {
		s.processToken(&ms, state.CurrentArg(), state.Position())
	}
	s.finish(&ms)

	s.logger.Debug("parse done",
		"errors", len(s.errors),
		"arguments", len(s.args),
		"unrecognized", len(s.unrecognized))

	return len(s.errors) > 0, nil
}

// ParseString splits line into shell words and parses them.
func (s *Parser) ParseString(line string) (bool, error) {
	args, err := parse.Split(line)
	if err != nil {
		return false, errs.ErrSplitCommandLine.Wrap(err)
	}

	return s.Parse(args...)
}

// Clear drops the results of the last Parse and keeps declarations and policy.
func (s *Parser) Clear() {
	for _, f := range s.flags {
		f.Clear()
	}
	s.args = nil
	s.unrecognized = nil
	s.errors = nil
}

// ClearDeclarations removes every flag along with the results of the last Parse.
func (s *Parser) ClearDeclarations() {
	s.Clear()
	s.flags = nil
	s.lookup.Clear()
	s.shortNames = nil
	s.mapTainted = true
}

// HasFlag reports whether name occurred at least once.
func (s *Parser) HasFlag(name string) (bool, error) {
	f, err := s.flag(name)
	if err != nil {
		return false, err
	}

	return f.Count() > 0, nil
}

// HasOpt is an alias for HasFlag.
func (s *Parser) HasOpt(name string) (bool, error) {
	return s.HasFlag(name)
}

// Flag returns the declaration name belongs to.
func (s *Parser) Flag(name string) (*Flag, error) {
	return s.flag(name)
}

// Instances returns every recorded occurrence of the flag name belongs to,
// whichever synonym was used.
func (s *Parser) Instances(name string) ([]Instance, error) {
	f, err := s.flag(name)
	if err != nil {
		return nil, err
	}

	return f.Instances(), nil
}

// InstanceCount returns how often the flag name belongs to occurred.
func (s *Parser) InstanceCount(name string) (int, error) {
	f, err := s.flag(name)
	if err != nil {
		return 0, err
	}

	return f.Count(), nil
}

// Instance returns occurrence idx of name; negative indices count from the
// end and Last is the most recent one.
func (s *Parser) Instance(name string, idx int) (Instance, error) {
	_, inst, err := s.instanceOf(name, idx)
	return inst, err
}

// GetName returns the synonym used by occurrence idx of name.
func (s *Parser) GetName(name string, idx int) (string, error) {
	inst, err := s.Instance(name, idx)
	if err != nil {
		return "", err
	}

	return inst.name, nil
}

// GetFlagName is an alias for GetName.
func (s *Parser) GetFlagName(name string, idx int) (string, error) {
	return s.GetName(name, idx)
}

// GetOptName is an alias for GetName.
func (s *Parser) GetOptName(name string, idx int) (string, error) {
	return s.GetName(name, idx)
}

// CanonicalName returns the first declared name of the flag name belongs to.
func (s *Parser) CanonicalName(name string) (string, error) {
	f, err := s.flag(name)
	if err != nil {
		return "", err
	}

	return f.Name(), nil
}

func (s *Parser) GetPos(name string, idx int) (int, error) {
	inst, err := s.Instance(name, idx)
	if err != nil {
		return 0, err
	}

	return inst.pos, nil
}

// GetSubPos returns the 1-based place of occurrence idx within a chained
// token, or 0 when the token held a single flag.
func (s *Parser) GetSubPos(name string, idx int) (int, error) {
	inst, err := s.Instance(name, idx)
	if err != nil {
		return 0, err
	}

	return inst.subpos, nil
}

// HasInput reports whether occurrence idx of name carries an input. Bare
// flags have no inputs to ask about.
func (s *Parser) HasInput(name string, idx int) (bool, error) {
	inst, err := s.inputOf(name, idx)
	if err != nil {
		return false, err
	}

	return inst.input.set, nil
}

// GetInput returns the input of occurrence idx of name, which is unset when
// none was given.
func (s *Parser) GetInput(name string, idx int) (Input, error) {
	inst, err := s.inputOf(name, idx)
	if err != nil {
		return Input{}, err
	}

	return inst.input, nil
}

// IsInputInternal reports whether the input came from the flag's own token.
func (s *Parser) IsInputInternal(name string, idx int) (bool, error) {
	input, err := s.GetInput(name, idx)
	if err != nil {
		return false, err
	}

	return input.IsInternal(), nil
}

// IsInputExternal reports whether the input came from the following token.
func (s *Parser) IsInputExternal(name string, idx int) (bool, error) {
	input, err := s.GetInput(name, idx)
	if err != nil {
		return false, err
	}

	return input.IsExternal(), nil
}

// UnrecognizedFlags returns the collected flag-like tokens no declaration matched.
func (s *Parser) UnrecognizedFlags() []Arg {
	return slices.Clone(s.unrecognized)
}

// UnrecognizedOpts is an alias for UnrecognizedFlags.
func (s *Parser) UnrecognizedOpts() []Arg {
	return s.UnrecognizedFlags()
}

func (s *Parser) GetUnrecognizedFlag(idx int) (Arg, error) {
	a, ok := at(s.unrecognized, idx)
	if !ok {
		return Arg{}, errs.ErrIndexOutOfBounds.WithArgs(idx, "unrecognized", len(s.unrecognized))
	}

	return a, nil
}

// Arguments returns the collected positional arguments.
func (s *Parser) Arguments() []Arg {
	return slices.Clone(s.args)
}

func (s *Parser) GetArgument(idx int) (Arg, error) {
	a, ok := at(s.args, idx)
	if !ok {
		return Arg{}, errs.ErrIndexOutOfBounds.WithArgs(idx, "arguments", len(s.args))
	}

	return a, nil
}

// RegisteredFlags returns the canonical name of every declaration in
// declaration order.
func (s *Parser) RegisteredFlags() []string {
	names := make([]string, 0, len(s.flags))
	for _, f := range s.flags {
		names = append(names, f.Name())
	}

	return names
}

// RegisteredOpts is an alias for RegisteredFlags.
func (s *Parser) RegisteredOpts() []string {
	return s.RegisteredFlags()
}

// GetMap returns a copy of the lookup map from every declared name to its
// Ref, in declaration order.
func (s *Parser) GetMap() (*orderedmap.OrderedMap[string, Ref], error) {
	if err := s.prepare(); err != nil {
		return nil, err
	}

	m := orderedmap.NewOrderedMap[string, Ref]()
	for it := s.lookup.Front(); it != nil; it = it.Next() {
		m.Set(*it.Key, it.Value)
	}

	return m, nil
}

// Resolve returns the declaration and name a Ref from GetMap points at.
func (s *Parser) Resolve(ref Ref) (*Flag, Name, bool) {
	if ref.Flag < 0 || ref.Flag >= len(s.flags) {
		return nil, Name{}, false
	}
	f := s.flags[ref.Flag]
	if ref.Name < 0 || ref.Name >= len(f.names) {
		return nil, Name{}, false
	}

	return f, f.names[ref.Name], true
}

func normalizeMax(max int) int {
	if max < 0 {
		return Unlimited
	}
	return max
}

func validMarker(r rune) error {
	if r == utf8.RuneError || unicode.IsSpace(r) || unicode.IsControl(r) {
		return errs.ErrInvalidMarker.WithArgs(string(r))
	}
	return nil
}
