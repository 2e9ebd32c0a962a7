package errs

import "github.com/definitelyprobably/libclutils/i18n"

// Declaration and lookup errors
var (
	ErrEmptyName        = i18n.NewError(ErrEmptyNameKey)
	ErrNoNames          = i18n.NewError(ErrNoNamesKey)
	ErrNameConflict     = i18n.NewError(ErrNameConflictKey)
	ErrUnknownName      = i18n.NewError(ErrUnknownNameKey)
	ErrIndexOutOfBounds = i18n.NewError(ErrIndexOutOfBoundsKey)
	ErrBareFlagInput    = i18n.NewError(ErrBareFlagInputKey)
	ErrNoMarkers        = i18n.NewError(ErrNoMarkersKey)
	ErrUnknownErrorKey  = i18n.NewError(ErrUnknownErrorKeyKey)
	ErrUnknownLanguage  = i18n.NewError(ErrUnknownLanguageKey)
	ErrUnknownClass     = i18n.NewError(ErrUnknownClassKey)
	ErrUnknownGreedy    = i18n.NewError(ErrUnknownGreedyKey)
	ErrSplitCommandLine = i18n.NewError(ErrSplitCommandLineKey)
	ErrNoInput          = i18n.NewError(ErrNoInputKey)
	ErrInvalidMarker    = i18n.NewError(ErrInvalidMarkerKey)
	ErrConfigFormat     = i18n.NewError(ErrConfigFormatKey)
	ErrConfigDecode     = i18n.NewError(ErrConfigDecodeKey)
	ErrUnknownConfig    = i18n.NewError(ErrUnknownConfigKey)
	ErrWriteDiagnostics = i18n.NewError(ErrWriteDiagnosticsKey)
)

// Conversion errors
var (
	ErrParseInt        = i18n.NewError(ErrParseIntKey)
	ErrParseUint       = i18n.NewError(ErrParseUintKey)
	ErrParseFloat      = i18n.NewError(ErrParseFloatKey)
	ErrParseBool       = i18n.NewError(ErrParseBoolKey)
	ErrParseTime       = i18n.NewError(ErrParseTimeKey)
	ErrParseDuration   = i18n.NewError(ErrParseDurationKey)
	ErrUnsupportedType = i18n.NewError(ErrUnsupportedTypeKey)
)

// All returns every sentinel defined by the package.
func All() []*i18n.TrError {
	return []*i18n.TrError{
		ErrEmptyName, ErrNoNames, ErrNameConflict, ErrUnknownName,
		ErrIndexOutOfBounds, ErrBareFlagInput, ErrNoMarkers, ErrUnknownErrorKey,
		ErrUnknownLanguage, ErrUnknownClass, ErrUnknownGreedy, ErrSplitCommandLine,
		ErrNoInput, ErrInvalidMarker, ErrConfigFormat, ErrConfigDecode,
		ErrUnknownConfig, ErrWriteDiagnostics,
		ErrParseInt, ErrParseUint, ErrParseFloat, ErrParseBool, ErrParseTime,
		ErrParseDuration, ErrUnsupportedType,
	}
}
