// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for user-facing logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational progress message.
	Info(msg string)
	// Success logs a completed-step message.
	Success(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error, rendering the full cause chain.
	Error(err error)
}
