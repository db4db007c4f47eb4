// Package logging provides structured logging configuration for stubd.
//
// It wraps log/slog so every component logs consistently. Components
// accept a *slog.Logger in their constructor or via a setter; when no
// logger is provided they fall back to logging.Nop().
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("stub server started", "port", 4280)
package logging
