package testutil

import (
	"io"

	"github.com/dtroode/cogedon-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
