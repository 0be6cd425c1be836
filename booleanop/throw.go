package booleanop

import "github.com/pkg/errors"

// Threading error returns through the sweep loop and the connector would
// add a ton of noise to code that is already delicate. Instead, failures
// panic, and the public API in the root package recovers to convert to
// an error.

type OpError error

// Panic with an OpError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleBooleanOpPanicRecover(r interface{}) error {
	if r != nil {
		if opError, ok := r.(OpError); ok {
			return opError
		}
		panic(r)
	}
	return nil
}
