package domain

import (
	"errors"
	"fmt"
)

// FatalError defines an interface for errors that must abort the run.
type FatalError interface {
	error
	IsFatal() bool
}

// IsFatal checks if an error requires the process to terminate.
func IsFatal(err error) bool {
	var fe FatalError
	if errors.As(err, &fe) {
		return fe.IsFatal()
	}
	return false
}

// CorrectnessError reports that the registry path and the direct path
// disagreed about how many workload elements matched the target. The two
// paths must be semantically identical, so a mismatch is a logic defect,
// never a transient condition: the run aborts and is not retried.
type CorrectnessError struct {
	Scenario        string // "1-to-1" or "1-to-many"
	Fanout          int    // 0 when the scenario has no fanout dimension
	RegistryMatches uint64
	DirectMatches   uint64
}

func (e *CorrectnessError) Error() string {
	if e.Fanout > 0 {
		return fmt.Sprintf("[%s fanout=%d]: match counts differ (%d vs %d)",
			e.Scenario, e.Fanout, e.RegistryMatches, e.DirectMatches)
	}
	return fmt.Sprintf("[%s]: match counts differ (%d vs %d)",
		e.Scenario, e.RegistryMatches, e.DirectMatches)
}

func (e *CorrectnessError) IsFatal() bool {
	return true
}

// ConfigError represents a configuration error (always fatal at startup)
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) IsFatal() bool {
	return true
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	// ErrIDOutOfRange is returned when an ID was never assigned by the
	// registry. It signals an internal invariant breach, not user input error.
	ErrIDOutOfRange = errors.New("symbol id out of range")

	// ErrEmptySymbol is returned when an empty target symbol is configured.
	ErrEmptySymbol = errors.New("empty symbol")
)
