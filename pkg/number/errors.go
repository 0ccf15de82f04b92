package number

import "fmt"

// RangeError reports a range or span that cannot produce a value.
type RangeError struct {
	Op     string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("number: %s: %s", e.Op, e.Reason)
}

func rangeErrorf(op string, format string, args ...interface{}) *RangeError {
	return &RangeError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
