package argv

// ErrorType categorizes parse failures. Every category is fatal: the
// resolver reports the first violation in phase order and stops.
type ErrorType string

const (
	ErrorTypeMissingValue         ErrorType = "missing_value"
	ErrorTypeDecode               ErrorType = "invalid_value"
	ErrorTypeOverflow             ErrorType = "overflow"
	ErrorTypeInvalidEnum          ErrorType = "invalid_enum_key"
	ErrorTypeMultipleDeclarations ErrorType = "multiple_declarations"
	ErrorTypeValidation           ErrorType = "validation"
	ErrorTypeRequiredMissing      ErrorType = "required_missing"
	ErrorTypeUnknownIdentifier    ErrorType = "unknown_identifier"
	ErrorTypeTooFewArguments      ErrorType = "too_few_arguments"
	ErrorTypeTooManyArguments     ErrorType = "too_many_arguments"
)

// ParseError is the single error type surfaced by Resolver.Parse.
// Message is a complete, one-line, user-facing sentence; Suggestion
// optionally carries a close identifier match for unknown-identifier errors.
type ParseError struct {
	Type       ErrorType
	Message    string
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " Did you mean '--" + e.Suggestion + "'?"
	}
	return e.Message
}

// NewParseError creates a ParseError with the given category and message.
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{Type: errType, Message: message}
}

// missingValueError reports an option identifier that was not followed by a value.
func missingValueError(id string) *ParseError {
	return NewParseError(ErrorTypeMissingValue, "Missing value for option "+id+".")
}

// inputError converts a codec outcome into the corresponding ParseError.
// name identifies the offending option ("-i", "--count") or positional
// ("positional argument 2"); raw is the user input that failed.
// Enumeration codecs raise a ready-made error which passes through unchanged.
func inputError(v Value, out decodeOutcome, derr error, name, raw string) error {
	switch out {
	case decodeOK:
		return nil
	case decodeOverflow:
		return NewParseError(ErrorTypeOverflow,
			"Value parse failed for "+name+": Numeric argument "+raw+
				" is not in the valid range "+v.valueRange()+".")
	default:
		if derr != nil {
			return derr
		}
		return NewParseError(ErrorTypeDecode,
			"Value parse failed for "+name+": Argument "+raw+
				" could not be parsed as type "+v.typeName()+".")
	}
}
