package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Transport means the underlying bus reported a failure (NACK, bus
	// fault, timeout). The cause is preserved and never retried here.
	Transport Code = "transport_error"

	// InvalidStored means the chip holds registers that do not decode to a
	// representable value. Distinct from Transport so callers can tell
	// "chip unreachable" from "chip holds garbage".
	InvalidStored Code = "invalid_stored_value"

	// InvalidInput means caller-supplied data was rejected before any bus
	// traffic was issued.
	InvalidInput Code = "invalid_input"

	Error Code = "error" // generic fallback
)

// E is the wrapper used when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
