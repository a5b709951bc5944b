package error

import (
	"fmt"
	"strings"
)

// SpecError is an error detected while loading the grammar data. Row is a
// 1-based line number within the resource the error was found at.
type SpecError struct {
	Cause    error
	Resource string
	Detail   string
	Row      int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.Resource != "" {
		fmt.Fprintf(&b, "%v: ", e.Resource)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}
