// Package errs defines the usage errors returned by the library. Each error is
// a translatable sentinel whose message lives in the i18n locale files.
package errs

const (
	prefixKey = "clutils"

	ErrorPrefixKey    = prefixKey + ".error"
	TemplatePrefixKey = prefixKey + ".template"
)

// Declaration and lookup errors
const (
	ErrEmptyNameKey        = ErrorPrefixKey + ".empty_name"
	ErrNoNamesKey          = ErrorPrefixKey + ".no_names"
	ErrNameConflictKey     = ErrorPrefixKey + ".name_conflict"
	ErrUnknownNameKey      = ErrorPrefixKey + ".unknown_name"
	ErrIndexOutOfBoundsKey = ErrorPrefixKey + ".index_out_of_bounds"
	ErrBareFlagInputKey    = ErrorPrefixKey + ".bare_flag_input"
	ErrNoMarkersKey        = ErrorPrefixKey + ".no_markers"
	ErrUnknownErrorKeyKey  = ErrorPrefixKey + ".unknown_error_key"
	ErrUnknownLanguageKey  = ErrorPrefixKey + ".unknown_language"
	ErrUnknownClassKey     = ErrorPrefixKey + ".unknown_class"
	ErrUnknownGreedyKey    = ErrorPrefixKey + ".unknown_greedy"
	ErrSplitCommandLineKey = ErrorPrefixKey + ".split_command_line"
	ErrNoInputKey          = ErrorPrefixKey + ".no_input"
	ErrInvalidMarkerKey    = ErrorPrefixKey + ".invalid_marker"
	ErrConfigFormatKey     = ErrorPrefixKey + ".config_format"
	ErrConfigDecodeKey     = ErrorPrefixKey + ".config_decode"
	ErrUnknownConfigKey    = ErrorPrefixKey + ".unknown_config"
	ErrWriteDiagnosticsKey = ErrorPrefixKey + ".write_diagnostics"
)

// Conversion errors
const (
	ErrParseIntKey        = ErrorPrefixKey + ".parse_int"
	ErrParseUintKey       = ErrorPrefixKey + ".parse_uint"
	ErrParseFloatKey      = ErrorPrefixKey + ".parse_float"
	ErrParseBoolKey       = ErrorPrefixKey + ".parse_bool"
	ErrParseTimeKey       = ErrorPrefixKey + ".parse_time"
	ErrParseDurationKey   = ErrorPrefixKey + ".parse_duration"
	ErrUnsupportedTypeKey = ErrorPrefixKey + ".unsupported_type"
)
