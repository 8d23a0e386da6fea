package traverse

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the package logger consulted by Traced executors.
// The default is a no-op logger; passing nil restores it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Traced decorates an execution policy with debug logging. Each traversal is
// tagged with a fresh id so its start and done entries can be correlated.
// Traced is itself a stateless executor and composes with Engine like any
// other; when debug logging is disabled it delegates with no overhead beyond
// the level check.
type Traced[S, D, F any, XP Executor[S, D, F]] struct{}

func (Traced[S, D, F, XP]) Execute(dst D, src S, fn F) D {
	var exec XP

	log := logger.Load()
	if !log.Core().Enabled(zap.DebugLevel) {
		return exec.Execute(dst, src, fn)
	}

	id := uuid.New().String()
	log.Debug("traversal start", zap.String("traversal_id", id))
	dst = exec.Execute(dst, src, fn)
	log.Debug("traversal done", zap.String("traversal_id", id))
	return dst
}
