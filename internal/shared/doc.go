// Package shared provides common utilities and test helpers used across the
// Oilst consolidation codebase. It is a central location for functionality
// that does not belong to any specific pipeline stage.
//
// The package is organized into the following components:
//
// - testutil: Testing utilities, currently the slog capture handler
//
// It should only contain generic helpers with no pipeline-specific logic;
// anything tied to a stage belongs in that stage's package.
package shared
