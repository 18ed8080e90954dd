// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production).
// All output goes to stderr; stdout belongs to the command's own output.
//
// # Run Correlation
//
// Each conversion is tagged with a run ID. The WithRunID helper attaches it to
// the logger, ensuring that all lines written by one run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Conversion started")
package logger
