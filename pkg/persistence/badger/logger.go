package badger

import (
	"fmt"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// storeLogger routes badger's internal logging through the store's zap
// logger. Badger terminates messages with a newline, which zap would render
// literally, so messages are trimmed before forwarding.
type storeLogger struct {
	sugar *zap.SugaredLogger
}

func newStoreLogger(logger *zap.Logger) *storeLogger {
	return &storeLogger{sugar: logger.Sugar().With("component", "badger")}
}

var _ badgerdb.Logger = (*storeLogger)(nil)

func (sl *storeLogger) Errorf(format string, args ...interface{}) {
	sl.sugar.Error(trimmed(format, args))
}

func (sl *storeLogger) Warningf(format string, args ...interface{}) {
	sl.sugar.Warn(trimmed(format, args))
}

func (sl *storeLogger) Infof(format string, args ...interface{}) {
	sl.sugar.Info(trimmed(format, args))
}

func (sl *storeLogger) Debugf(format string, args ...interface{}) {
	sl.sugar.Debug(trimmed(format, args))
}

func trimmed(format string, args []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
