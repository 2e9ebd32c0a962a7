package clutils

import (
	"log/slog"

	"golang.org/x/text/language"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithBare("-v", "--verbose"),
//		WithMandatory("-o", "--output"),
//		WithDeclaration(Optional, 1, NewName("--color")),
//		WithStop("--"),
//		WithGreedy(GreedyLax),
//		WithArguments(Unlimited))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithBare is a wrapper for AddBare.
func WithBare(names ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddBare(names...)
	}
}

// WithOptional is a wrapper for AddOptional.
func WithOptional(names ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOptional(names...)
	}
}

// WithMandatory is a wrapper for AddMandatory.
func WithMandatory(names ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddMandatory(names...)
	}
}

// WithStop is a wrapper for AddStop.
func WithStop(names ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddStop(names...)
	}
}

// WithDeclaration is a wrapper for AddFlag, for declarations which need an occurrence limit or explicitly typed names.
func WithDeclaration(class FlagClass, max int, names ...Name) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddFlag(class, max, names...)
	}
}

// WithGreedy sets the greedy policy of mandatory flags.
func WithGreedy(greedy Greedy) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetGreedy(greedy)
	}
}

func WithOptionalGreedy(greedy bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetOptionalGreedy(greedy)
	}
}

func WithChaining(chaining bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetChaining(chaining)
	}
}

// WithArguments accepts up to max positional arguments (Unlimited for any number).
func WithArguments(max int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.AllowArguments(max)
	}
}

// WithUnrecognizedFlags collects up to max unrecognized flags instead of reporting them.
func WithUnrecognizedFlags(max int, aggressive Aggressive) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.AllowUnrecognizedFlags(max, aggressive)
	}
}

// WithUnrecognizedOpts is a wrapper for AllowUnrecognizedOpts.
func WithUnrecognizedOpts(max int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.AllowUnrecognizedOpts(max)
	}
}

func WithEmptyArguments(allow bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.AllowEmptyArguments(allow)
	}
}

func WithEmptyInputs(allow bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.AllowEmptyInputs(allow)
	}
}

// WithFlagMarkers replaces the characters which introduce a flag (defaults to '-').
func WithFlagMarkers(markers ...rune) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetFlagMarkers(markers...)
	}
}

// WithInputMarker sets the character separating a flag from its input (defaults to '=').
func WithInputMarker(marker rune) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetInputMarker(marker)
	}
}

func WithPreamble(text string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetPreamble(text)
	}
}

func WithPostscript(text string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetPostscript(text)
	}
}

// WithErrorFormat is a wrapper for FormatError.
func WithErrorFormat(key ErrorKey, template string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.FormatError(key, template)
	}
}

// WithLanguage selects the language of the default error templates.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetLanguage(lang)
	}
}

func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}
