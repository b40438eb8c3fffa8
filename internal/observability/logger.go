// Package observability holds the console's logging and metrics plumbing.
package observability

import "go.uber.org/zap"

// NewLogger builds the process logger. Production mode emits JSON; anything
// else gets the human-readable development encoder.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
