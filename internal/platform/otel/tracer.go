package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes spans emitted by the web service packages.
const instrumentationName = "github.com/louisbranch/socialcrm"

// Tracer returns the named tracer from the globally registered provider.
//
// Before Setup registers a provider this is the no-op tracer, so callers can
// start spans unconditionally.
func Tracer(component string) trace.Tracer {
	if component == "" {
		return otel.Tracer(instrumentationName)
	}
	return otel.Tracer(instrumentationName + "/" + component)
}
