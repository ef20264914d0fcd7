package modkit

import (
	"writer/internal/platform/config"
	"writer/internal/platform/logger"
	"writer/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// every field may be zero; modules fall back to the process logger and skip metrics
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Metrics *metrics.Registry
}

// Logger returns Log or a named child of the process logger
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
