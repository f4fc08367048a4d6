package logconfig

import (
	"time"

	logger "github.com/sirupsen/logrus"
)

// Presets for the global logrus logger. Picked once at startup via
// Apply; tests call the debug preset directly.

// ConfigDebugLogger: colored terminal output with caller locations and
// every level down to debug. Meant for a developer watching the swap
// protocol step through its states.
func ConfigDebugLogger() {
	logger.SetReportCaller(true)
	logger.SetLevel(logger.DebugLevel)
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:            true,
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}

// ConfigInfoLogger: the debug preset minus callers and debug chatter.
func ConfigInfoLogger() {
	logger.SetReportCaller(false)
	logger.SetLevel(logger.InfoLevel)
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:            true,
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}

// ConfigProductionLogger emits one JSON object per line with full
// timestamps, for deployments that ship logs to a collector.
func ConfigProductionLogger() {
	logger.SetReportCaller(false)
	logger.SetLevel(logger.InfoLevel)
	logger.SetFormatter(&logger.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
}

// Apply selects a preset by name. Unknown names fall back to info so a
// typo in the environment never silences the server.
func Apply(preset string) {
	switch preset {
	case "debug":
		ConfigDebugLogger()
	case "production":
		ConfigProductionLogger()
	default:
		ConfigInfoLogger()
	}
}
