// Package logging builds the slog logger used by the routeopt command.
package logging
