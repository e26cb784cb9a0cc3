package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// WithLogData stores a LogData in the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the LogData stored in the context, or nil.
func GetLogData(ctx context.Context) *LogData {
	logData, ok := ctx.Value(logDataKey{}).(*LogData)
	if !ok {
		return nil
	}
	return logData
}

// NewHumaMiddleware injects a fresh LogData per request and emits the
// completion line with all collected fields and timings.
func NewHumaMiddleware(logger *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID

		logData := NewLogData(logger)
		logData.AddData("operation", operationID)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
