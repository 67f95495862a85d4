package errors

import (
	"fmt"
)

// upper bound on how far a cause chain is followed; a chain that loops back on
// itself stops here instead of spinning forever
const maxCauseDepth = 64

// returns the error directly wrapped by err, or nil. for joined errors the
// first member is taken as the originating one.
func cause(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if inner != nil {
				return inner
			}
		}
	}

	return nil
}

// kind-qualified text for an error, e.g. "*json.SyntaxError: invalid character"
func describe(err error) string {
	return fmt.Sprintf("%T: %s", err, err.Error())
}

// description of the wrapped cause when there is one, otherwise of err itself
func causeOrSelf(err error) string {
	if c := cause(err); c != nil {
		return describe(c)
	}

	return describe(err)
}

// plain message of the deepest error in the chain starting at err
func rootCauseMessage(err error) string {
	root := err

	for depth := 0; depth < maxCauseDepth; depth++ {
		next := cause(root)
		if next == nil {
			break
		}

		root = next
	}

	return root.Error()
}
