package list_classes

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAvailableClasses(ctx context.Context) []models.ClassSummary
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
