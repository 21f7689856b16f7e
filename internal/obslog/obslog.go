// Package obslog provides a shared structured-tracing helper used by the
// tabu and genetic drivers: a thin wrapper that makes
// a nil hclog.Logger behave as a documented no-op, so tracing can be
// unconditionally called at Debug level without a nil check at every call
// site.
package obslog

import "github.com/hashicorp/go-hclog"

// Or returns logger if non-nil, otherwise a discarding no-op logger. Driver
// constructors call this once at construction so hot-path code never has
// to branch on whether tracing is enabled.
func Or(logger hclog.Logger) hclog.Logger {
	if logger != nil {
		return logger
	}

	return hclog.NewNullLogger()
}
