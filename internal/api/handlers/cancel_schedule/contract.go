package cancel_schedule

import (
	"context"
)

type CatalogService interface {
	CancelSchedule(ctx context.Context, scheduleID string, cascadeOverride *bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
