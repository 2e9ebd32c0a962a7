package clutils

import (
	"slices"

	"github.com/definitelyprobably/libclutils/errs"
)

// Name is a flag spelling and its type. A name built with NewName derives its
// type from the active markers every time they change; names built with a
// typed factory keep the given type.
type Name struct {
	text     string
	typ      FlagType
	explicit bool
}

// NewName returns a name whose type is derived from its leading markers.
func NewName(text string) Name {
	return Name{text: text}
}

// NewTypedName returns a name with an explicit type.
func NewTypedName(text string, typ FlagType) Name {
	return Name{text: text, typ: typ, explicit: true}
}

// NewShortName returns an explicitly short name, e.g. a markerless "c" that
// should chain like "-c".
func NewShortName(text string) Name {
	return NewTypedName(text, ShortType)
}

// NewLongName returns an explicitly long name.
func NewLongName(text string) Name {
	return NewTypedName(text, LongType)
}

func (n Name) Text() string     { return n.text }
func (n Name) Type() FlagType   { return n.typ }
func (n Name) IsExplicit() bool { return n.explicit }
func (n Name) String() string   { return n.text }
func (n Name) IsShort() bool    { return n.typ == ShortType }

// GuessType re-derives a non explicit name's type when tainted is set.
func (n *Name) GuessType(markers []rune, tainted bool) {
	if n.explicit || !tainted {
		return
	}

	switch countMarkers(n.text, markers) {
	case 0:
		n.typ = UnsetType
	case 1:
		n.typ = ShortType
	default:
		n.typ = LongType
	}
}

// markerPrefix returns the run of leading marker characters of the name.
func (n Name) markerPrefix(markers []rune) string {
	end := 0
	for i, r := range n.text {
		if !slices.Contains(markers, r) {
			return n.text[:i]
		}
		end = i + len(string(r))
	}
	return n.text[:end]
}

func (n Name) validate() error {
	if n.text == "" {
		return errs.ErrEmptyName
	}
	return nil
}

func countMarkers(s string, markers []rune) int {
	count := 0
	for _, r := range s {
		if !slices.Contains(markers, r) {
			break
		}
		count++
	}
	return count
}

func isMarked(s string, markers []rune) bool {
	return countMarkers(s, markers) > 0
}
