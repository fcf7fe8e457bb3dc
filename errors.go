package binrec

import "fmt"

// ConfigurationError reports an invalid record declaration: an unsupported
// field type, a missing or non-positive length/count, an empty struct, or a
// duplicate field name. Compile fails fast with this error and returns no
// partially-usable Schema.
type ConfigurationError struct {
	// Path is the dotted path of the offending field from the root
	// declaration, for example "Payment.recent[].sender".
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return "invalid schema: " + e.Reason
	}
	return fmt.Sprintf("invalid schema: %s: %s", e.Path, e.Reason)
}

// IncompleteDataError reports a Build call on a Reader that has not yet
// accumulated a full record. The bytes buffered so far are left intact;
// the caller may keep feeding and retry.
type IncompleteDataError struct {
	Received int
	Total    int
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("incomplete record: have %d of %d bytes", e.Received, e.Total)
}

// DecodeError reports a field whose bytes cannot be interpreted under its
// declared rule during Build. The Reader's buffer is left intact so the
// caller can inspect it or Reset.
type DecodeError struct {
	Path   string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a value that does not conform to the schema it is
// being encoded against: a variant/kind mismatch, a wrong blob or text
// length, a wrong list or struct arity, or a numeric value that overflows
// the declared width.
type EncodeError struct {
	Path   string
	Reason string
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return "encode: " + e.Reason
	}
	return fmt.Sprintf("encode %s: %s", e.Path, e.Reason)
}
