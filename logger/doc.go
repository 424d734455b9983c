// Package logger provides structured logging for the FMP client using
// zerolog.
//
// It supports JSON and console output, level configuration from the
// FMP_LOG_* environment variables, and component-scoped loggers with
// structured fields.
//
// # Usage
//
//	log := logger.NewFromEnv().WithComponent("client")
//	log.Debug("request sent", logger.Fields(logger.FieldEndpoint, "profile"))
package logger
