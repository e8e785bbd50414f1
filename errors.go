package qvortex

import "errors"

// Error kinds mirror a C-ABI-style status contract: success (nil error),
// null-pointer, and an allocation-failure kind kept only for parity with
// that contract. Nothing on the Go hot path allocates, so it can never
// actually occur here.
var (
	// ErrNilContext is returned when Init, Update, or Final is called
	// with a nil *Context.
	ErrNilContext = errors.New("qvortex: nil context")

	// ErrNilOutput is returned when Final is called with a nil output
	// pointer.
	ErrNilOutput = errors.New("qvortex: nil output pointer")

	// ErrAllocFailed is reserved for parity with the C-ABI status code
	// -2. The Go implementation performs no allocation on the hot
	// path and never returns this error; it exists so callers porting
	// status-code handling from the C ABI have somewhere to map it.
	ErrAllocFailed = errors.New("qvortex: allocation failed")
)
