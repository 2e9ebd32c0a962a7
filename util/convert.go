package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/definitelyprobably/libclutils/errs"
)

// ConvertString converts a flag input into the value data points to.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *int:
		val, err := strconv.ParseInt(value, 0, strconv.IntSize)
		if err != nil {
			return errs.ErrParseInt.WithArgs(value).Wrap(err)
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return errs.ErrParseInt.WithArgs(value).Wrap(err)
		}
		*t = val
	case *int32:
		val, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return errs.ErrParseInt.WithArgs(value).Wrap(err)
		}
		*t = int32(val)
	case *uint:
		val, err := strconv.ParseUint(value, 0, strconv.IntSize)
		if err != nil {
			return errs.ErrParseUint.WithArgs(value).Wrap(err)
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return errs.ErrParseUint.WithArgs(value).Wrap(err)
		}
		*t = val
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errs.ErrParseFloat.WithArgs(value).Wrap(err)
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return errs.ErrParseFloat.WithArgs(value).Wrap(err)
		}
		*t = float32(val)
	case *bool:
		val, err := ParseBool(value)
		if err != nil {
			return err
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return errs.ErrParseTime.WithArgs(value).Wrap(err)
		}
		*t = val
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return errs.ErrParseDuration.WithArgs(value).Wrap(err)
		}
		*t = val
	default:
		return errs.ErrUnsupportedType.WithArgs(fmt.Sprintf("%T", data))
	}

	return nil
}

// ParseBool accepts the strconv spellings plus yes/no and on/off.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}

	val, err := strconv.ParseBool(value)
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(value).Wrap(err)
	}

	return val, nil
}
