package errors

// ErrorCode identifies a failure category. Codes are internal diagnostics;
// the CLI surfaces every failure the same way (message on stderr, exit 1).
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	// CodeInternal is the fallback for failures with no more specific code.
	CodeInternal ErrorCode = "INTERNAL"

	// CodeConfigInvalid marks configuration that failed to load or validate.
	CodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// CodeInputOpen marks an input path that could not be opened.
	CodeInputOpen ErrorCode = "INPUT_OPEN"

	// CodeInputMalformed marks structurally broken input: a missing required
	// column, an unreadable header, or a row too short to carry its columns.
	CodeInputMalformed ErrorCode = "INPUT_MALFORMED"

	// CodeOutputCreate marks an output path that could not be created.
	CodeOutputCreate ErrorCode = "OUTPUT_CREATE"

	// CodeOutputWrite marks a failure while writing or flushing output rows.
	CodeOutputWrite ErrorCode = "OUTPUT_WRITE"
)
