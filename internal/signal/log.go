package signal

import "go.uber.org/zap"

// log carries the package's non-fatal diagnostics, like Medfilt's oversize
// kernel warning. The default logger discards everything.
var log = zap.NewNop().Sugar()

// SetLogger installs a logger for the package's warnings. Passing nil
// restores the silent default.
func SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		log = zap.NewNop().Sugar()
		return
	}
	log = logger
}
