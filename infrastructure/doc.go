// Package infrastructure provides concrete implementations of the
// interfaces defined in the core package. The media model itself only
// depends on the core/interfaces.Logger seam; the implementations here
// are what applications plug into it.
//
// The infrastructure package is organized by technical concern:
//
// - logger/standard: Simple structured logger over the standard library
// - logger/logrus: Structured logger backed by sirupsen/logrus
//
// # Logger
//
// Both loggers support structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Debug("Ignoring unknown medium token", map[string]interface{}{
//	    "medium": "podcast",
//	})
//
// The logrus implementation accepts a level and can wrap an existing
// logrus instance so the media model shares the host application's
// output:
//
//	logger := logrus.NewLogrusLogger(sirupsen.DebugLevel)
//	mediarss.SetLogger(logger)
package infrastructure
