package scenario

import (
	"fmt"
	"log"
)

// AssertionMode controls how expectation steps report mismatches.
type AssertionMode int

const (
	// AssertionStrict fails the scenario on the first mismatch.
	AssertionStrict AssertionMode = iota
	// AssertionLogOnly logs mismatches and keeps running.
	AssertionLogOnly
)

// Assertions applies the configured mode to expectation failures.
type Assertions struct {
	Mode   AssertionMode
	Logger *log.Logger
}

// Failf reports an expectation mismatch. In strict mode it returns an
// error; in log-only mode it logs and returns nil.
func (a Assertions) Failf(format string, args ...any) error {
	if a.Mode == AssertionStrict {
		return fmt.Errorf(format, args...)
	}
	if a.Logger != nil {
		a.Logger.Printf("expectation failed: "+format, args...)
	}
	return nil
}
