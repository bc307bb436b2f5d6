package utils

import (
	"go.uber.org/zap"
)

// NewLogger returns a production JSON logger when production is set and a
// human readable development logger otherwise.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
