package clutils

import (
	"io"
	"strconv"
	"strings"

	"github.com/definitelyprobably/libclutils/errs"
)

var placeholders = []string{"errno", "subpos", "pos", "type", "opt", "input"}

// FormatError overrides the template used to render errors of key. The
// placeholders %errno, %pos, %subpos, %type, %opt and %input are substituted;
// a placeholder whose datum the error does not carry is left as written.
func (s *Parser) FormatError(key ErrorKey, template string) error {
	if _, ok := errorKeyNames[key]; !ok {
		return errs.ErrUnknownErrorKey.WithArgs(key.String())
	}
	s.formats[key] = template

	return nil
}

// DefaultErrorFormats drops every template set with FormatError.
func (s *Parser) DefaultErrorFormats() {
	clear(s.formats)
}

// ErrorFormat returns the template in effect for key.
func (s *Parser) ErrorFormat(key ErrorKey) string {
	if tmpl, ok := s.formats[key]; ok {
		return tmpl
	}
	if tmpl, ok := s.bundle.Raw(s.lang, key.TemplateKey()); ok {
		return tmpl
	}

	return "%errno"
}

// Errors returns the records of the last Parse in the order they were found.
func (s *Parser) Errors() []ErrorInfo {
	return append([]ErrorInfo(nil), s.errors...)
}

func (s *Parser) ErrorCount() int {
	return len(s.errors)
}

// ClearErrors drops the error records and keeps every other parse result.
func (s *Parser) ClearErrors() {
	s.errors = nil
}

// ErrorString renders error idx; negative indices count from the end.
func (s *Parser) ErrorString(idx int) (string, error) {
	info, ok := at(s.errors, idx)
	if !ok {
		return "", errs.ErrIndexOutOfBounds.WithArgs(idx, "errors", len(s.errors))
	}

	return s.Render(info), nil
}

// ErrorStrings renders every error, without preamble or postscript.
func (s *Parser) ErrorStrings() []string {
	lines := make([]string, 0, len(s.errors))
	for _, info := range s.errors {
		lines = append(lines, s.Render(info))
	}

	return lines
}

// WriteErrors writes the preamble, one line per error and the postscript.
// An empty preamble or postscript writes nothing.
func (s *Parser) WriteErrors(w io.Writer) error {
	return s.writeBlock(w, s.errors)
}

// WriteErrorsWith is WriteErrors restricted to errors of the given keys.
func (s *Parser) WriteErrorsWith(w io.Writer, keys ...ErrorKey) error {
	var selected []ErrorInfo
	for _, info := range s.errors {
		for _, key := range keys {
			if info.Key == key {
				selected = append(selected, info)
				break
			}
		}
	}

	return s.writeBlock(w, selected)
}

// WriteError writes the single line of error idx.
func (s *Parser) WriteError(w io.Writer, idx int) error {
	line, err := s.ErrorString(idx)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, line+"\n"); err != nil {
		return errs.ErrWriteDiagnostics.Wrap(err)
	}

	return nil
}

func (s *Parser) writeBlock(w io.Writer, records []ErrorInfo) error {
	var sb strings.Builder
	sb.WriteString(s.preamble)
	for _, info := range records {
		sb.WriteString(s.Render(info))
		sb.WriteByte('\n')
	}
	sb.WriteString(s.postscript)

	if sb.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errs.ErrWriteDiagnostics.Wrap(err)
	}

	return nil
}

// Render expands the template of info.Key against info. Substituted text is
// not scanned again.
func (s *Parser) Render(info ErrorInfo) string {
	tmpl := s.ErrorFormat(info.Key)

	var sb strings.Builder
	for {
		i := strings.IndexByte(tmpl, '%')
		if i < 0 {
			sb.WriteString(tmpl)
			break
		}
		sb.WriteString(tmpl[:i])
		tmpl = tmpl[i+1:]

		matched := false
		for _, name := range placeholders {
			if !strings.HasPrefix(tmpl, name) {
				continue
			}
			if value, ok := info.field(name); ok {
				sb.WriteString(value)
			} else {
				sb.WriteString("%" + name)
			}
			tmpl = tmpl[len(name):]
			matched = true
			break
		}
		if !matched {
			sb.WriteByte('%')
		}
	}

	return sb.String()
}

func (info ErrorInfo) field(name string) (string, bool) {
	switch name {
	case "errno":
		return strconv.Itoa(int(info.Key)), true
	case "pos":
		return strconv.Itoa(info.Pos), true
	case "subpos":
		return strconv.Itoa(info.SubPos), info.Key.HasSubpos()
	case "type":
		if !info.HasOpt {
			return "", false
		}
		if info.IsFlag {
			return "flag", true
		}
		return "opt", true
	case "opt":
		return info.Opt, info.HasOpt
	case "input":
		if info.Input == nil {
			return "", false
		}
		return info.Input.String(), true
	}

	return "", false
}

// addError records info, switching to the Subpos variant of the key when the
// error sits inside a chained token.
func (s *Parser) addError(info ErrorInfo) {
	if info.SubPos > 0 {
		if key, ok := info.Key.withSubpos(); ok {
			info.Key = key
		} else {
			info.SubPos = 0
		}
	} else {
		info.SubPos = 0
	}

	s.errors = append(s.errors, info)
	s.logger.Debug("parse error",
		"key", info.Key.String(),
		"pos", info.Pos,
		"subpos", info.SubPos,
		"opt", info.Opt)
}

func (s *Parser) flagError(key ErrorKey, pos, subpos int, name string, input ErrorInput) {
	s.addError(ErrorInfo{
		Key:    key,
		Pos:    pos,
		SubPos: subpos,
		HasOpt: true,
		Opt:    name,
		IsFlag: true,
		Input:  input,
	})
}

func (s *Parser) unrecognizedError(pos int, token string, isFlag bool) {
	s.addError(ErrorInfo{
		Key:    Unrecognized,
		Pos:    pos,
		HasOpt: true,
		Opt:    token,
		IsFlag: isFlag,
	})
}

func (s *Parser) argEmptyError(pos int) {
	s.addError(ErrorInfo{Key: ArgEmpty, Pos: pos})
}

// at resolves an index that may count from the end.
func at[T any](items []T, idx int) (T, bool) {
	n := len(items)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		var zero T
		return zero, false
	}

	return items[idx], true
}
