package persistence

import (
	"fmt"

	"agencymanager/sources/tracing"
)

type gormtracer struct {
	logger *tracing.Logger
}

func (w *gormtracer) Printf(format string, args ...interface{}) {
	w.logger.D("gorm trace", tracing.SqlQuery, fmt.Sprintf(format, args...))
}
