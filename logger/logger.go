package logger

import (
	"go.uber.org/zap"
)

// Log is the application logger. It is a no-op logger until Init runs.
var Log = zap.NewNop()

// Init builds the global logger, with the production config when production is set.
func Init(production bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
