// Package logger builds the service's zap loggers.
//
// log.level picks the minimum level (debug selects zap's development preset)
// and log.format picks json or console encoding. Entries use the keys
// "level", "time" and "message".
//
// Handlers derive a request logger with WithRayID so every line of a request
// carries the ray id set by the rayid middleware:
//
//	l := logger.WithRayID(h.service.logger, c)
//	l.Warn("Reconciliation rejected", zap.Error(err))
package logger
