package brain

import (
	"fmt"
	"strings"
)

// ConfigError reports a behavior configuration that cannot run
// Fatal at startup: the frame loop must not start when one is returned
type ConfigError struct {
	State    StateID   // Offending state, meaningful when HasState is set
	HasState bool
	Missing  []StateID // States of the catalog left without a definition
	Reason   string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.HasState {
		fmt.Fprintf(&b, ": state %s", e.State.Key())
	}
	if len(e.Missing) > 0 {
		keys := make([]string, len(e.Missing))
		for i, id := range e.Missing {
			keys[i] = id.Key()
		}
		fmt.Fprintf(&b, ": missing states [%s]", strings.Join(keys, ", "))
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func stateError(id StateID, format string, args ...any) *ConfigError {
	return &ConfigError{State: id, HasState: true, Reason: fmt.Sprintf(format, args...)}
}
