package util

import (
	"errors"
	"testing"
	"time"

	"github.com/definitelyprobably/libclutils/errs"
	"github.com/stretchr/testify/assert"
)

func TestConvertString(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		var i int
		assert.NoError(t, ConvertString("42", &i))
		assert.Equal(t, 42, i)

		var i64 int64
		assert.NoError(t, ConvertString("-0x10", &i64))
		assert.Equal(t, int64(-16), i64)

		var i32 int32
		err := ConvertString("4294967296", &i32)
		assert.True(t, errors.Is(err, errs.ErrParseInt))

		var u uint
		err = ConvertString("-1", &u)
		assert.True(t, errors.Is(err, errs.ErrParseUint))
	})

	t.Run("floats", func(t *testing.T) {
		var f float64
		assert.NoError(t, ConvertString("2.5", &f))
		assert.Equal(t, 2.5, f)

		err := ConvertString("two", &f)
		assert.True(t, errors.Is(err, errs.ErrParseFloat))
	})

	t.Run("bools", func(t *testing.T) {
		for in, want := range map[string]bool{"true": true, "1": true, "yes": true, "On": true, "false": false, "off": false, "N": false} {
			var b bool
			assert.NoError(t, ConvertString(in, &b), in)
			assert.Equal(t, want, b, in)
		}

		var b bool
		err := ConvertString("maybe", &b)
		assert.True(t, errors.Is(err, errs.ErrParseBool))
	})

	t.Run("times", func(t *testing.T) {
		var tm time.Time
		assert.NoError(t, ConvertString("2024-03-01", &tm))
		assert.Equal(t, 2024, tm.Year())
		assert.Equal(t, time.March, tm.Month())

		err := ConvertString("not a date", &tm)
		assert.True(t, errors.Is(err, errs.ErrParseTime))

		var d time.Duration
		assert.NoError(t, ConvertString("1m30s", &d))
		assert.Equal(t, 90*time.Second, d)
		assert.True(t, errors.Is(ConvertString("soon", &d), errs.ErrParseDuration))
	})

	t.Run("unsupported", func(t *testing.T) {
		var c complex128
		err := ConvertString("1+2i", &c)
		assert.True(t, errors.Is(err, errs.ErrUnsupportedType))
	})
}
