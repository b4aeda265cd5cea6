package ljson

import "fmt"

// diagKind distinguishes warnings from errors when a diagnostic is routed
// through the flag-gated upcast policy: a tolerated extension is recorded as
// a warning, the same extension with its tolerance flag clear is recorded as
// an error instead.
type diagKind int

const (
	diagWarning diagKind = iota
	diagError
)

// diagnostics accumulates the error and warning lists for one Parse call,
// enforcing a max-errors/max-warnings cap and an "ignoring further..."
// sentinel independently for each list.
type diagnostics struct {
	max int

	errors   []string
	warnings []string

	errCapped, warnCapped bool
}

func newDiagnostics(max int) *diagnostics {
	return &diagnostics{max: max}
}

// errorf records an error at the given position.
func (d *diagnostics) errorf(pos LineCol, format string, args ...any) {
	d.record(diagError, pos, fmt.Sprintf(format, args...))
}

// warnf records a diagnostic authorized by flag. If flag is clear in flags,
// the diagnostic is recorded as an error instead of a warning. A flag value
// of 0 means the diagnostic is unconditionally a warning.
func (d *diagnostics) warnf(flags, flag Flag, pos LineCol, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if flag != 0 && !flags.Has(flag) {
		d.record(diagError, pos, msg)
		return
	}
	d.record(diagWarning, pos, msg)
}

func (d *diagnostics) record(kind diagKind, pos LineCol, msg string) {
	switch kind {
	case diagError:
		if d.errCapped {
			return
		}
		if len(d.errors) >= d.max {
			d.errors = append(d.errors, "ERROR: too many error messages - ignoring further errors")
			d.errCapped = true
			return
		}
		d.errors = append(d.errors, fmt.Sprintf("Error: %s - %s", pos, msg))
	case diagWarning:
		if d.warnCapped {
			return
		}
		if len(d.warnings) >= d.max {
			d.warnings = append(d.warnings, "Error: too many warning messages - ignoring further warnings")
			d.warnCapped = true
			return
		}
		d.warnings = append(d.warnings, fmt.Sprintf("Warning: %s - %s", pos, msg))
	}
}
