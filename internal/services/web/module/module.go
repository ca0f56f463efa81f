// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"
	"time"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(deps Dependencies) (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}

// Dependencies carries the shared collaborators every module renders with.
type Dependencies struct {
	// DefaultLocale is used when the request expresses no language preference.
	DefaultLocale string
	Logger        *log.Logger
	// Now is the clock for relative times; nil means time.Now.
	Now func() time.Time
}

// Clock returns the current time from Now or the wall clock.
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Log returns the configured logger or the standard logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}
