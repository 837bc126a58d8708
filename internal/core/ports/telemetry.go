package ports

import (
	"context"
	"io"
)

// Telemetry is the entry point for recording pipeline phases.
type Telemetry interface {
	// Record starts recording a new vertex for the named phase.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded phase.
type Vertex interface {
	// Stdout returns a writer capturing the phase's standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the phase's error output stream.
	Stderr() io.Writer
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}
