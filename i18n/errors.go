package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// TranslatableError is an error whose message is looked up by key in a Bundle.
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Localize(lang language.Tag) string
}

// TrError is the TranslatableError implementation used for the library's
// sentinel errors. Copies made by WithArgs and Wrap keep a pointer to the
// sentinel they derive from, so errors.Is matches them against it.
//
//	err := NewError("clutils.error.unknown_name").WithArgs("--flag")
//	errors.Is(err, sentinel) // true when err derives from sentinel
type TrError struct {
	origin  *TrError
	key     string
	args    []interface{}
	wrapped error
	bundle  *Bundle
}

// NewError creates a sentinel error for key, resolved against the default bundle.
func NewError(key string) *TrError {
	e := &TrError{key: key}
	e.origin = e
	return e
}

func (e *TrError) messages() *Bundle {
	if e.bundle != nil {
		return e.bundle
	}
	return Default()
}

func (e *TrError) Error() string {
	return e.Localize(e.messages().DefaultLanguage())
}

// Localize renders the error in lang.
func (e *TrError) Localize(lang language.Tag) string {
	msg := e.messages().TL(lang, e.key, e.args...)
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := *e
	c.args = args
	return &c
}

func (e *TrError) Wrap(err error) TranslatableError {
	c := *e
	c.wrapped = err
	return &c
}

// WithBundle returns a copy resolving its message against b.
func (e *TrError) WithBundle(b *Bundle) *TrError {
	c := *e
	c.bundle = b
	return &c
}

// Is reports whether target is the sentinel e was derived from.
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	if !ok {
		return false
	}
	return e.origin == t.origin
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.wrapped
}
