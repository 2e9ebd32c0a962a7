package clutils

import (
	"time"

	"github.com/definitelyprobably/libclutils/errs"
	"github.com/definitelyprobably/libclutils/util"
)

// InputAs converts the input of occurrence idx of name to T. See
// util.ConvertString for the supported types.
func InputAs[T any](s *Parser, name string, idx int) (T, error) {
	var value T

	input, err := s.GetInput(name, idx)
	if err != nil {
		return value, err
	}
	if !input.set {
		return value, errs.ErrNoInput.WithArgs(idx, name)
	}
	if err = util.ConvertString(input.text, &value); err != nil {
		return value, err
	}

	return value, nil
}

func (s *Parser) InputInt(name string, idx int) (int64, error) {
	return InputAs[int64](s, name, idx)
}

func (s *Parser) InputFloat(name string, idx int) (float64, error) {
	return InputAs[float64](s, name, idx)
}

// InputBool accepts the strconv spellings as well as yes/no and on/off.
func (s *Parser) InputBool(name string, idx int) (bool, error) {
	return InputAs[bool](s, name, idx)
}

// InputTime understands most common date layouts, interpreted in local time.
func (s *Parser) InputTime(name string, idx int) (time.Time, error) {
	return InputAs[time.Time](s, name, idx)
}

func (s *Parser) InputDuration(name string, idx int) (time.Duration, error) {
	return InputAs[time.Duration](s, name, idx)
}
