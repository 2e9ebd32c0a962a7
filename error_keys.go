package clutils

import (
	"strconv"
	"strings"

	"github.com/definitelyprobably/libclutils/errs"
	"github.com/iancoleman/strcase"
)

// ErrorKey identifies a class of parse error. The numeric value is the error
// number rendered by %errno; keys ending in Subpos are used when the offending
// flag sits inside a chained token.
type ErrorKey int

const (
	ArgEmpty             ErrorKey = 1000
	Unrecognized         ErrorKey = 2000
	Surplus              ErrorKey = 3000
	SurplusSubpos        ErrorKey = 3010
	Proscribed           ErrorKey = 3100
	ProscribedSubpos     ErrorKey = 3110
	StopProscribed       ErrorKey = 3101
	StopProscribedSubpos ErrorKey = 3111
	EmptyInput           ErrorKey = 4000
	EmptyInputSubpos     ErrorKey = 4010
	BareEmptyInput       ErrorKey = 4100
	StopEmptyInput       ErrorKey = 4101
	BareInput            ErrorKey = 4200
	BareInputSubpos      ErrorKey = 4210
	StopInput            ErrorKey = 4201
	StopInputSubpos      ErrorKey = 4211
	MissingInput         ErrorKey = 4300
	MissingInputSubpos   ErrorKey = 4310
)

var errorKeyNames = map[ErrorKey]string{
	ArgEmpty:             "ArgEmpty",
	Unrecognized:         "Unrecognized",
	Surplus:              "Surplus",
	SurplusSubpos:        "SurplusSubpos",
	Proscribed:           "Proscribed",
	ProscribedSubpos:     "ProscribedSubpos",
	StopProscribed:       "StopProscribed",
	StopProscribedSubpos: "StopProscribedSubpos",
	EmptyInput:           "EmptyInput",
	EmptyInputSubpos:     "EmptyInputSubpos",
	BareEmptyInput:       "BareEmptyInput",
	StopEmptyInput:       "StopEmptyInput",
	BareInput:            "BareInput",
	BareInputSubpos:      "BareInputSubpos",
	StopInput:            "StopInput",
	StopInputSubpos:      "StopInputSubpos",
	MissingInput:         "MissingInput",
	MissingInputSubpos:   "MissingInputSubpos",
}

var subposKeys = map[ErrorKey]ErrorKey{
	Surplus:        SurplusSubpos,
	Proscribed:     ProscribedSubpos,
	StopProscribed: StopProscribedSubpos,
	EmptyInput:     EmptyInputSubpos,
	BareInput:      BareInputSubpos,
	StopInput:      StopInputSubpos,
	MissingInput:   MissingInputSubpos,
}

// ErrorKeys returns every key in canonical order.
func ErrorKeys() []ErrorKey {
	return []ErrorKey{
		ArgEmpty,
		Surplus,
		SurplusSubpos,
		Proscribed,
		ProscribedSubpos,
		Unrecognized,
		EmptyInput,
		EmptyInputSubpos,
		BareEmptyInput,
		BareInput,
		BareInputSubpos,
		MissingInput,
		MissingInputSubpos,
		StopEmptyInput,
		StopInput,
		StopInputSubpos,
		StopProscribed,
		StopProscribedSubpos,
	}
}

func (k ErrorKey) String() string {
	if s, ok := errorKeyNames[k]; ok {
		return s
	}
	return "ErrorKey(" + strconv.Itoa(int(k)) + ")"
}

// HasSubpos reports whether the key is a chained-token variant.
func (k ErrorKey) HasSubpos() bool {
	for _, v := range subposKeys {
		if v == k {
			return true
		}
	}
	return false
}

// withSubpos returns the chained-token variant of k if there is one.
func (k ErrorKey) withSubpos() (ErrorKey, bool) {
	v, ok := subposKeys[k]
	return v, ok
}

// TemplateKey returns the i18n key of the key's default template.
func (k ErrorKey) TemplateKey() string {
	return errs.TemplatePrefixKey + "." + strcase.ToSnake(k.String())
}

// ParseErrorKey accepts a key by number ("4300") or by name in any case
// convention ("MissingInput", "missing_input", "missing-input").
func ParseErrorKey(s string) (ErrorKey, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := errorKeyNames[ErrorKey(n)]; ok {
			return ErrorKey(n), nil
		}
		return 0, errs.ErrUnknownErrorKey.WithArgs(s)
	}

	camel := strcase.ToCamel(s)
	for key, name := range errorKeyNames {
		if name == camel {
			return key, nil
		}
	}

	return 0, errs.ErrUnknownErrorKey.WithArgs(s)
}

// ErrorInput is the input payload of an error record: either the offending
// text or a count.
type ErrorInput interface {
	String() string
	errorInput()
}

// TextInput is offending input text.
type TextInput string

// CountInput is a numeric payload, e.g. the limit a Surplus error exceeded.
type CountInput int

func (t TextInput) String() string  { return string(t) }
func (c CountInput) String() string { return strconv.Itoa(int(c)) }
func (TextInput) errorInput()       {}
func (CountInput) errorInput()      {}

// ErrorInfo is one recorded parse error. SubPos is 0 unless Key is a Subpos
// variant; Opt and IsFlag are meaningful when HasOpt is set; Input is nil when
// the error has no input payload.
type ErrorInfo struct {
	Key    ErrorKey
	Pos    int
	SubPos int
	HasOpt bool
	Opt    string
	IsFlag bool
	Input  ErrorInput
}
